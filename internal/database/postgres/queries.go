package postgres

// Player queries. Loadout and attributes live in JSONB columns so the
// shape can evolve without migrations for every new stat.
const (
	queryGetPlayer = `
		SELECT id, username, gp, fc, loadout, attributes
		FROM players
		WHERE id = $1`

	queryGetPlayerForUpdate = `
		SELECT id, username, gp, fc, loadout, attributes
		FROM players
		WHERE id = $1
		FOR UPDATE`

	queryInsertPlayer = `
		INSERT INTO players (id, username, gp, fc, loadout, attributes)
		VALUES ($1, $2, $3, $4, $5, $6)`

	queryUpdatePlayer = `
		UPDATE players
		SET gp = $1, fc = $2, loadout = $3, attributes = $4, updated_at = now()
		WHERE id = $5`
)

// Transaction queries
const (
	queryInsertTransaction = `
		INSERT INTO transactions (player_id, kind, currency, amount, description)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`

	queryListTransactions = `
		SELECT id, player_id, kind, currency, amount, description, created_at
		FROM transactions
		WHERE player_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2`
)

// Catalog queries
const (
	queryGetCatalogEntry = `
		SELECT id, kind, name, description, cost, currency
		FROM catalog_entries
		WHERE id = $1`

	queryListCatalogEntries = `
		SELECT id, kind, name, description, cost, currency
		FROM catalog_entries
		WHERE kind = $1
		ORDER BY id`

	queryUpsertCatalogEntry = `
		INSERT INTO catalog_entries (id, kind, name, description, cost, currency)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE
		SET kind = EXCLUDED.kind,
		    name = EXCLUDED.name,
		    description = EXCLUDED.description,
		    cost = EXCLUDED.cost,
		    currency = EXCLUDED.currency`
)
