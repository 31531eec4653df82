package categorize

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/dvloznov/statement-analyzer/internal/ai"
	"github.com/dvloznov/statement-analyzer/internal/registry"
	"github.com/dvloznov/statement-analyzer/internal/statement"
)

const (
	// batchSize is how many transactions one classifier call covers.
	batchSize = 50

	// promptLimit caps how many descriptions of a batch are actually
	// forwarded to the classifier. The original pipeline sliced the prompt
	// at 30 while batching at 50; the tail of every batch therefore keeps
	// its rule-based category. Reproduced as-is and pinned by tests.
	promptLimit = 30
)

const classifierSystemPrompt = "You are a financial categorization expert. " +
	"Respond only with a JSON array of categories, no additional text."

// Batcher refines rule-based categories through a batched model classifier.
// It never fails: any batch whose classification goes wrong keeps the
// categories it came in with, and other batches are unaffected.
type Batcher struct {
	completer ai.Completer
	log       zerolog.Logger
}

// NewBatcher returns a batcher over the given completer. A nil completer
// disables reclassification entirely.
func NewBatcher(completer ai.Completer, log zerolog.Logger) *Batcher {
	return &Batcher{completer: completer, log: log}
}

// Recategorize returns the input transactions in the same order, with
// categories overwritten wherever the classifier produced a usable label.
func (b *Batcher) Recategorize(ctx context.Context, txs []statement.Transaction) []statement.Transaction {
	if b.completer == nil || len(txs) == 0 {
		return txs
	}

	out := make([]statement.Transaction, 0, len(txs))
	for start := 0; start < len(txs); start += batchSize {
		end := min(start+batchSize, len(txs))
		batch := txs[start:end]

		labels, err := b.classifyBatch(ctx, start, batch)
		if err != nil {
			b.log.Warn().Err(err).
				Int("batch_start", start).
				Int("batch_len", len(batch)).
				Msg("classifier batch failed, keeping rule-based categories")
			out = append(out, batch...)
			continue
		}

		for i, tx := range batch {
			// Positional apply, only within the returned array's bounds
			// and only for labels from the closed set.
			if i < len(labels) && registry.IsCategory(labels[i]) {
				tx.Category = labels[i]
				tx.Subcategory = Subcategory(labels[i])
			}
			out = append(out, tx)
		}
	}
	return out
}

func (b *Batcher) classifyBatch(ctx context.Context, offset int, batch []statement.Transaction) ([]string, error) {
	var sb strings.Builder
	for i := 0; i < min(len(batch), promptLimit); i++ {
		fmt.Fprintf(&sb, "%d. %s\n", offset+i, batch[i].Description)
	}

	user := fmt.Sprintf(
		"Categorize these financial transactions into the most appropriate category.\n\n"+
			"Available categories: %s\n\n"+
			"Transactions:\n%s\n"+
			"Respond ONLY with a JSON array of category names in the EXACT order of the transactions, nothing else.\n"+
			"Example format: [\"Food & Dining\", \"Transportation\", \"Shopping & Retail\"]",
		strings.Join(registry.Categories, ", "), sb.String())

	raw, err := b.completer.Complete(ctx, ai.CompletionRequest{
		System:      classifierSystemPrompt,
		User:        user,
		MaxTokens:   500,
		Temperature: 0.1,
	})
	if err != nil {
		return nil, err
	}

	var labels []string
	if err := json.Unmarshal([]byte(ai.CleanJSON(raw)), &labels); err != nil {
		return nil, fmt.Errorf("decode category array: %w", err)
	}
	return labels, nil
}
