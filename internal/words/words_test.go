package words_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/rybkr/crossword/internal/words"
)

func TestRead(t *testing.T) {
	input := "cat\nDog\n\n  bird  \ncat\n"
	got, err := words.Read(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	want := words.Of("CAT", "DOG", "BIRD")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("list mismatch (-want +got):\n%s", diff)
	}
}

func TestReadEmpty(t *testing.T) {
	_, err := words.Read(strings.NewReader("\n\n  \n"))
	if !errors.Is(err, words.ErrEmptyList) {
		t.Errorf("error = %v, want %v", err, words.ErrEmptyList)
	}
}

func TestContains(t *testing.T) {
	list := words.Of("one", "two")
	if !list.Contains("ONE") {
		t.Error("expected ONE in list")
	}
	if list.Contains("one") {
		t.Error("lookups are by the stored uppercase form")
	}
}
