package main

import (
	"context"
	"fmt"
	"io"

	"github.com/at-ishikawa/flashgrid/internal/flashcard"
)

// importSets saves every set into store, stopping at the first failure.
func importSets(ctx context.Context, output io.Writer, store flashcard.Store, sets []flashcard.FlashcardSet) error {
	for i := range sets {
		if err := store.SaveSet(ctx, &sets[i]); err != nil {
			return fmt.Errorf("SaveSet(%s) > %w", sets[i].ID, err)
		}
		fmt.Fprintf(output, "Imported %s (%d cards)\n", sets[i].ID, len(sets[i].Cards))
	}
	fmt.Fprintf(output, "\nImport Summary:\n  Sets: %d\n", len(sets))
	return nil
}
