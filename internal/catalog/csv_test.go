package catalog

import (
	"context"
	"reflect"
	"strings"
	"testing"
)

func TestService_ImportCSV(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	input := strings.NewReader(strings.Join([]string{
		"media,title,creator,genres,format,release_date,identifier,kind,notes",
		`book,Dune,Frank Herbert,"Fiction; Science Fiction",Hardcover,1965-08-01,9780441013593,isbn,First edition`,
		`movie,The Matrix,Warner Bros.,Action,Blu-ray,1999-03-31,085391163926,upc,`,
		`podcast,Serial,,,,,,,`,
		`game,,Supergiant Games,,,,,,`,
		`music,OK Computer,Radiohead,Alternative Rock,CD,1997-05-21,724385522925,ean,`,
	}, "\n"))

	summary, err := svc.ImportCSV(ctx, input)
	if err != nil {
		t.Fatalf("ImportCSV() error = %v", err)
	}

	if summary.Imported != 3 {
		t.Errorf("Imported = %d, want 3", summary.Imported)
	}
	if summary.Skipped != 2 {
		t.Errorf("Skipped = %d, want 2", summary.Skipped)
	}
	if len(summary.Errors) != 2 {
		t.Fatalf("Errors = %v", summary.Errors)
	}
	if !strings.Contains(summary.Errors[0], "line 4") {
		t.Errorf("first error = %q, want line 4 reference", summary.Errors[0])
	}
	if !strings.Contains(summary.Errors[1], "line 5") {
		t.Errorf("second error = %q, want line 5 reference", summary.Errors[1])
	}

	books, err := svc.List(ctx, ListItemsOptions{Media: "book"})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(books) != 1 {
		t.Fatalf("got %d books, want 1", len(books))
	}
	book := books[0]
	if book.Title != "Dune" || book.Creator != "Frank Herbert" {
		t.Errorf("book = %+v", book)
	}
	if !reflect.DeepEqual(book.Genres, []string{"Fiction", "Science Fiction"}) {
		t.Errorf("Genres = %v", book.Genres)
	}
	if book.IdentifierKind != "isbn" || book.Identifier != "9780441013593" {
		t.Errorf("identifier = %s:%s", book.IdentifierKind, book.Identifier)
	}
}

func TestService_ImportCSV_MissingRequiredColumns(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.ImportCSV(context.Background(), strings.NewReader("title,creator\nDune,Frank Herbert\n"))
	if err == nil {
		t.Fatal("ImportCSV() error = nil, want header validation error")
	}
}

func TestService_ImportCSV_HeaderNormalization(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	// Underscores and case in headers are ignored; unknown columns skipped.
	input := strings.NewReader("Media,Title,Release_Date,shelf\nbook,Neuromancer,1984-07-01,A3\n")

	summary, err := svc.ImportCSV(ctx, input)
	if err != nil {
		t.Fatalf("ImportCSV() error = %v", err)
	}
	if summary.Imported != 1 || summary.Skipped != 0 {
		t.Fatalf("summary = %+v", summary)
	}

	items, err := svc.List(ctx, ListItemsOptions{Search: "Neuromancer"})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(items) != 1 || items[0].ReleaseDate != "1984-07-01" {
		t.Errorf("items = %+v", items)
	}
}

func TestSplitGenres(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"Fiction; Science Fiction", []string{"Fiction", "Science Fiction"}},
		{"Action", []string{"Action"}},
		{" ; ; Drama ; ", []string{"Drama"}},
		{"", nil},
	}

	for _, tt := range tests {
		if got := splitGenres(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("splitGenres(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
