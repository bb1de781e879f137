package nori

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/twosom/logstash-filter-nori/morphology"
)

func TestBuildExclusionSet(t *testing.T) {
	catalog := morphology.SejongCatalog
	all := catalog.Tags()

	t.Run("keep nothing", func(t *testing.T) {
		got, err := BuildExclusionSet(all, nil, catalog)
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(all, got); diff != "" {
			t.Errorf("Diff: (-got +want)\n%s", diff)
		}
	})

	t.Run("keep everything", func(t *testing.T) {
		got, err := BuildExclusionSet(all, all.Names(), catalog)
		if err != nil {
			t.Fatal(err)
		}
		if got.Len() != 0 {
			t.Errorf("BuildExclusionSet() = %v, want empty", got.Names())
		}
	})

	t.Run("keep some", func(t *testing.T) {
		keep := []string{"NNG", "nnp", "JKS", "JKO"}
		got, err := BuildExclusionSet(all, keep, catalog)
		if err != nil {
			t.Fatal(err)
		}
		kept := morphology.NewTagSet(morphology.TagNNG, morphology.TagNNP, morphology.TagJ)
		for tag := range kept {
			if got.Contains(tag) {
				t.Errorf("%v must not be excluded", tag)
			}
		}
		if got.Len()+kept.Len() != all.Len() {
			t.Errorf("excluded %d + kept %d != all %d", got.Len(), kept.Len(), all.Len())
		}
	})

	t.Run("unknown tag", func(t *testing.T) {
		_, err := BuildExclusionSet(all, []string{"NNG", "NOPE"}, catalog)
		var cerr *ConfigError
		if !errors.As(err, &cerr) || cerr.Setting != SettingExtractTags {
			t.Fatalf("BuildExclusionSet() error = %v, want a [%s] ConfigError", err, SettingExtractTags)
		}
	})

	if all.Len() != catalog.Tags().Len() {
		t.Error("BuildExclusionSet must not mutate its input")
	}
}
