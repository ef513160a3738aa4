package lookup

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/homeshelf/homeshelf/internal/lookup/openlibrary"
	"github.com/homeshelf/homeshelf/internal/lookup/upcitemdb"
)

// bookStrategy resolves book identifiers through OpenLibrary. Barcodes
// (UPC/EAN) are first resolved to an ISBN via UPCItemDB.
type bookStrategy struct {
	openLibrary OpenLibraryClient
	upcItemDB   UPCItemDBClient
	logger      zerolog.Logger
}

func newBookStrategy(ol OpenLibraryClient, upc UPCItemDBClient, logger zerolog.Logger) *bookStrategy {
	return &bookStrategy{
		openLibrary: ol,
		upcItemDB:   upc,
		logger:      logger.With().Str("strategy", "book").Logger(),
	}
}

func (s *bookStrategy) CanHandle(media MediaType, kind IdentifierKind) bool {
	if media != MediaBook {
		return false
	}
	switch kind {
	case KindISBN, KindLCCN, KindOCLC, KindOLID, KindUPC, KindEAN:
		return true
	}
	return false
}

func (s *bookStrategy) Lookup(ctx context.Context, ident Identifier) (*Result, error) {
	switch ident.Kind {
	case KindISBN:
		return s.lookupISBN(ctx, ident.Value)
	case KindLCCN:
		book, err := s.openLibrary.GetByLCCN(ctx, ident.Value)
		return s.toResult(ctx, book, err)
	case KindOCLC:
		book, err := s.openLibrary.GetByOCLC(ctx, ident.Value)
		return s.toResult(ctx, book, err)
	case KindOLID:
		book, err := s.openLibrary.GetByOLID(ctx, ident.Value)
		return s.toResult(ctx, book, err)
	case KindUPC, KindEAN:
		return s.lookupBarcode(ctx, ident.Value)
	}
	return nil, &UnsupportedError{Media: MediaBook, Kind: ident.Kind}
}

// lookupBarcode resolves the barcode to a listing and recurses into the
// ISBN path. A listing without an embedded ISBN is a miss.
func (s *bookStrategy) lookupBarcode(ctx context.Context, code string) (*Result, error) {
	item, err := s.upcItemDB.LookupCode(ctx, code)
	if err != nil {
		if errors.Is(err, upcitemdb.ErrItemNotFound) {
			return nil, nil
		}
		if mustPropagate(ctx, err) {
			return nil, err
		}
		s.logger.Warn().Err(err).Str("code", code).Msg("Barcode lookup failed")
		return nil, nil
	}
	if item.ISBN == "" {
		s.logger.Debug().Str("code", code).Msg("Barcode listing has no ISBN")
		return nil, nil
	}
	return s.lookupISBN(ctx, item.ISBN)
}

// lookupISBN tries the volumes endpoint first, then falls back to the
// legacy books endpoint before declaring a miss.
func (s *bookStrategy) lookupISBN(ctx context.Context, isbn string) (*Result, error) {
	book, err := s.openLibrary.GetByISBN(ctx, isbn)
	if errors.Is(err, openlibrary.ErrBookNotFound) {
		book, err = s.openLibrary.GetByISBNLegacy(ctx, isbn)
	}
	return s.toResult(ctx, book, err)
}

func (s *bookStrategy) toResult(ctx context.Context, book *openlibrary.Book, err error) (*Result, error) {
	if err != nil {
		if errors.Is(err, openlibrary.ErrBookNotFound) {
			return nil, nil
		}
		if mustPropagate(ctx, err) {
			return nil, err
		}
		s.logger.Warn().Err(err).Msg("OpenLibrary lookup failed")
		return nil, nil
	}

	return &Result{
		Media: MediaBook,
		Book: &BookResponse{
			Title:       book.Title,
			Subtitle:    book.Subtitle,
			Authors:     book.Authors,
			Subjects:    book.Subjects,
			Publisher:   book.Publisher,
			PublishDate: book.PublishDate,
			Pages:       book.Pages,
			Format:      book.Format,
			CoverURL:    book.CoverURL,
		},
	}, nil
}
