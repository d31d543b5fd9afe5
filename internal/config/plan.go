package config

// Plan is the persistable subset of a Configuration: the loan parameters
// and payment intents, without runtime options. This is the shape stored by
// the plan store and carried by share links; computed schedule rows are
// never persisted.
type Plan struct {
	Loan              Loan            `json:"loan"`
	ExtraPayments     []PaymentIntent `json:"extraPayments,omitempty"`
	Forgiveness       []PaymentIntent `json:"forgiveness,omitempty"`
	RecastMonths      string          `json:"recastMonths,omitempty"`
	AutoRecastOnExtra bool            `json:"autoRecastOnExtra,omitempty"`
}

// Plan extracts the persistable input data from the configuration.
func (conf *Configuration) Plan() Plan {
	return Plan{
		Loan:              conf.Loan,
		ExtraPayments:     conf.ExtraPayments,
		Forgiveness:       conf.Forgiveness,
		RecastMonths:      conf.RecastMonths,
		AutoRecastOnExtra: conf.AutoRecastOnExtra,
	}
}

// Configuration wraps the plan back into a full configuration with default
// runtime options.
func (p Plan) Configuration() *Configuration {
	return &Configuration{
		Loan:              p.Loan,
		ExtraPayments:     p.ExtraPayments,
		Forgiveness:       p.Forgiveness,
		RecastMonths:      p.RecastMonths,
		AutoRecastOnExtra: p.AutoRecastOnExtra,
	}
}
