package searchindex

// Settings is the index schema contract: the attribute lists pushed to the
// search service at provisioning time. The search client's filter and sort
// vocabulary must match these lists exactly; a change on one side without the
// other is a defect.
type Settings struct {
	IndexName            string   `json:"-"`
	SearchableAttributes []string `json:"searchableAttributes"`
	FilterableAttributes []string `json:"filterableAttributes"`
	SortableAttributes   []string `json:"sortableAttributes"`
}

// DefaultIndexName is the product index provisioned by the sync job.
const DefaultIndexName = "product"

// DefaultSettings returns the product index schema.
func DefaultSettings() Settings {
	return Settings{
		IndexName: DefaultIndexName,
		SearchableAttributes: []string{
			"name",
			"shortDescription",
			"description",
			"modelNumber",
			"sku",
		},
		FilterableAttributes: []string{
			"category",
			"categorySlug",
			"locale",
			"isFeatured",
		},
		SortableAttributes: []string{
			"name",
			"sortOrder",
		},
	}
}
