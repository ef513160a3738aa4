package openlibrary

import (
	"reflect"
	"testing"
)

func TestDedupeSubjects_CaseInsensitive(t *testing.T) {
	got := DedupeSubjects([]string{"Fiction", "fiction", "FICTION"})
	want := []string{"Fiction"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DedupeSubjects() = %v, want %v", got, want)
	}
}

func TestDedupeSubjects_PunctuationInsensitive(t *testing.T) {
	got := DedupeSubjects([]string{
		"Prefect, ford (Fictitious character), fiction",
		"Prefect, Ford (Fictitious character) Fiction",
	})
	if len(got) != 1 {
		t.Fatalf("DedupeSubjects() = %v, want one entry", got)
	}
	want := "Prefect; Ford (Fictitious Character); Fiction"
	if got[0] != want {
		t.Errorf("display = %q, want %q", got[0], want)
	}
}

func TestDedupeSubjects_DiacriticInsensitive(t *testing.T) {
	got := DedupeSubjects([]string{"Café culture", "Cafe culture"})
	if len(got) != 1 {
		t.Fatalf("DedupeSubjects() = %v, want one entry", got)
	}
	if got[0] != "Café Culture" {
		t.Errorf("display = %q, want first entry title-cased", got[0])
	}
}

func TestDedupeSubjects_FirstEntryWinsAndOrderStable(t *testing.T) {
	got := DedupeSubjects([]string{"Science Fiction", "Adventure", "science-fiction", "Fantasy"})
	want := []string{"Science Fiction", "Adventure", "Fantasy"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DedupeSubjects() = %v, want %v", got, want)
	}
}

func TestDedupeSubjects_Empty(t *testing.T) {
	if got := DedupeSubjects(nil); got != nil {
		t.Errorf("DedupeSubjects(nil) = %v, want nil", got)
	}
}
