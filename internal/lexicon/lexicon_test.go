package lexicon

import "testing"

func TestLoadBuildsEveryTable(t *testing.T) {
	tables := Load()

	if len(tables.Consumer) == 0 || len(tables.ExecTone) == 0 || len(tables.WallSt) == 0 {
		t.Fatal("Expected all three voice lexicons populated")
	}
	if len(tables.InsiderPhrases) == 0 || len(tables.ExecPhrases) == 0 {
		t.Fatal("Expected phrase tables populated")
	}
	if len(tables.Hedging) == 0 || len(tables.Negations) == 0 || len(tables.Boosters) == 0 {
		t.Fatal("Expected modifier tables populated")
	}
}

func TestPolarityConventions(t *testing.T) {
	tables := Load()

	if tables.Consumer["love"] <= 0 {
		t.Errorf("Expected positive weight for love, got %f", tables.Consumer["love"])
	}
	if tables.Consumer["worst"] >= 0 {
		t.Errorf("Expected negative weight for worst, got %f", tables.Consumer["worst"])
	}
	if tables.ExecPhrases["guidance cut"] >= 0 {
		t.Errorf("Expected negative weight for guidance cut, got %f", tables.ExecPhrases["guidance cut"])
	}
	if tables.ExecPhrases["guidance raised"] <= 0 {
		t.Errorf("Expected positive weight for guidance raised, got %f", tables.ExecPhrases["guidance raised"])
	}
	if tables.WallSt["downgrade"] >= 0 {
		t.Errorf("Expected negative weight for downgrade, got %f", tables.WallSt["downgrade"])
	}
}

func TestSeverityOrdering(t *testing.T) {
	tables := Load()

	// Existential language outweighs routine caution.
	if tables.ExecPhrases["going concern"] >= tables.ExecPhrases["macro headwinds"] {
		t.Error("Expected going concern to be the most severe executive phrase")
	}
	if tables.ConsumerPhrases["product recall"] >= tables.ConsumerPhrases["login issues"] {
		t.Error("Expected recalls to outweigh login trouble")
	}
}

func TestInsiderConvictionMultiplier(t *testing.T) {
	if InsiderPhraseMult <= ExecPhraseMult {
		t.Errorf("Insider multiplier %f must exceed executive multiplier %f",
			InsiderPhraseMult, ExecPhraseMult)
	}
}

func TestImpactWeightsAmplifyOnly(t *testing.T) {
	for word, mult := range Load().ImpactWeights {
		if mult < 1.0 {
			t.Errorf("Impact weight for %q is %f, must never dampen", word, mult)
		}
	}
}
