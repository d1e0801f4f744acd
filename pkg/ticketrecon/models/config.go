package models

// DealerConfig holds the dealer master data for one processing run.
// It is fetched once from the config store and passed explicitly to
// every parsing entry point; the core never caches it in module state.
type DealerConfig struct {
	// MasterDealerCode is the 6-digit house dealer code to which
	// unassigned gaps and '?' rows are attributed.
	MasterDealerCode string `json:"master_dealer_code"`
	// Aliases maps a 6-digit alias code to its 6-digit target code.
	Aliases map[string]string `json:"dealer_aliases"`
}
