package config

// GenericMap is the record type flowing between pipeline stages.
type GenericMap map[string]interface{}

func (m GenericMap) Copy() GenericMap {
	result := make(GenericMap, len(m))
	for k, v := range m {
		result[k] = v
	}
	return result
}
