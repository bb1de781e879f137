package nori

import (
	"github.com/twosom/logstash-filter-nori/morphology"
)

// BuildExclusionSet returns the tags of all that are not named in keep.
// Names are resolved with catalog; an unknown name is a configuration error.
func BuildExclusionSet(all morphology.TagSet, keep []string, catalog morphology.Catalog) (morphology.TagSet, error) {
	kept := morphology.NewTagSet()
	for _, name := range keep {
		tag, err := catalog.Resolve(name)
		if err != nil {
			return nil, &ConfigError{Setting: SettingExtractTags, Err: err}
		}
		kept[tag] = struct{}{}
	}
	return all.Difference(kept), nil
}
