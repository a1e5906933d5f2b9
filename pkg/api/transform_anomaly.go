package api

// TransformAnomaly describes configuration for the online anomaly detector.
// The detector keeps an exponentially weighted moving average (EWMA) of the
// mean and variance of the sample stream and flags samples whose z-score
// against that baseline exceeds Threshold.
type TransformAnomaly struct {
	ValueField          string  `yaml:"valueField,omitempty" json:"valueField,omitempty" doc:"field containing the numeric value to evaluate (default: value)"`
	Alpha               float64 `yaml:"alpha,omitempty" json:"alpha,omitempty" doc:"EWMA smoothing factor, in (0,1); larger adapts faster but is noisier"`
	Threshold           float64 `yaml:"threshold,omitempty" json:"threshold,omitempty" doc:"|z-score| above which a sample is flagged (default: 3.0)"`
	Epsilon             float64 `yaml:"epsilon,omitempty" json:"epsilon,omitempty" doc:"variance floor guarding the z-score against division by zero"`
	WarmupSamples       int     `yaml:"warmupSamples,omitempty" json:"warmupSamples,omitempty" doc:"number of initial samples reported normal while the baseline settles"`
	SkipAnomalousUpdate bool    `yaml:"skipAnomalousUpdate,omitempty" json:"skipAnomalousUpdate,omitempty" doc:"when true, flagged samples do not update the baseline; default false updates on every sample"`
	Prefix              string  `yaml:"prefix,omitempty" json:"prefix,omitempty" doc:"prefix added to output fields to disambiguate when multiple anomaly stages are used"`
}
