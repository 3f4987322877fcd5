// Package catalog loads the purchasable-entry seed file, validates it, and
// serves cached catalog reads to the rest of the service.
package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/pitchside/pitchside/internal/domain"
	"github.com/pitchside/pitchside/internal/logger"
	"github.com/pitchside/pitchside/internal/repository"
)

// seedEntry mirrors one object in the catalog seed file.
type seedEntry struct {
	ID          string `json:"id"`
	Kind        string `json:"kind"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Cost        int    `json:"cost"`
	Currency    string `json:"currency"`
}

type seedFile struct {
	Entries []seedEntry `json:"entries"`
}

// LoadSeed reads and validates the seed file at path and returns the parsed
// entries. Validation runs the JSON schema first, then the domain parsers,
// so a typoed kind or currency fails the load instead of poisoning the
// store.
func LoadSeed(path string) ([]domain.CatalogEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog seed %s: %w", path, err)
	}

	if err := validateSeed(data); err != nil {
		return nil, fmt.Errorf("catalog seed %s failed schema validation: %w", path, err)
	}

	var seed seedFile
	if err := json.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("failed to parse catalog seed %s: %w", path, err)
	}

	entries := make([]domain.CatalogEntry, 0, len(seed.Entries))
	seen := make(map[string]struct{}, len(seed.Entries))
	for _, e := range seed.Entries {
		if _, dup := seen[e.ID]; dup {
			return nil, fmt.Errorf("duplicate catalog entry id %q in %s", e.ID, path)
		}
		seen[e.ID] = struct{}{}

		kind, err := domain.ParseItemKind(e.Kind)
		if err != nil {
			return nil, fmt.Errorf("catalog entry %q: %w", e.ID, err)
		}
		currency, err := domain.ParseCurrency(e.Currency)
		if err != nil {
			return nil, fmt.Errorf("catalog entry %q: %w", e.ID, err)
		}
		// Skills and styles are always charged in gp; a seed that says
		// otherwise is lying about what the settlement will do.
		if (kind == domain.KindSkill || kind == domain.KindStyle) && currency != domain.CurrencyGP {
			return nil, fmt.Errorf("catalog entry %q: %s entries must be priced in gp", e.ID, kind)
		}

		entries = append(entries, domain.CatalogEntry{
			ID:          e.ID,
			Kind:        kind,
			Name:        e.Name,
			Description: e.Description,
			Cost:        e.Cost,
			Currency:    currency,
		})
	}

	return entries, nil
}

func validateSeed(data []byte) error {
	compiler := jsonschema.NewCompiler()

	schemaDoc, err := jsonschema.UnmarshalJSON(bytes.NewReader(seedSchema))
	if err != nil {
		return fmt.Errorf("failed to parse embedded schema: %w", err)
	}
	if err := compiler.AddResource(seedSchemaName, schemaDoc); err != nil {
		return fmt.Errorf("failed to register schema: %w", err)
	}
	schema, err := compiler.Compile(seedSchemaName)
	if err != nil {
		return fmt.Errorf("failed to compile schema: %w", err)
	}

	instance, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("seed is not valid JSON: %w", err)
	}

	return schema.Validate(instance)
}

// SyncToDatabase loads the seed file and upserts its entries.
func SyncToDatabase(ctx context.Context, path string, repo repository.Catalog) (int, error) {
	entries, err := LoadSeed(path)
	if err != nil {
		return 0, err
	}
	if err := repo.UpsertEntries(ctx, entries); err != nil {
		return 0, fmt.Errorf("failed to sync catalog seed: %w", err)
	}
	logger.FromContext(ctx).Info("catalog seed synced",
		slog.String("path", path),
		slog.Int("entries", len(entries)))
	return len(entries), nil
}
