package catalog

import _ "embed"

const seedSchemaName = "catalog.schema.json"

//go:embed catalog.schema.json
var seedSchema []byte
