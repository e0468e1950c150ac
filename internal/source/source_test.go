package source

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dbsmedya/dinofacts/internal/config"
	"github.com/dbsmedya/dinofacts/internal/database"
	"github.com/dbsmedya/dinofacts/internal/dinosaur"
	"github.com/dbsmedya/dinofacts/internal/logger"
)

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestEmbedded(t *testing.T) {
	records, err := Embedded{}.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 19)

	assert.Empty(t, dinosaur.Check(records), "bundled fixture should pass record checks")

	// Every bundled dinosaur has a fun fact.
	for _, r := range records {
		_, ok := dinosaur.FunFact(r.Name)
		assert.True(t, ok, r.Name)
	}
}

func TestEmbedded_Queries(t *testing.T) {
	records, err := Embedded{}.Load(context.Background())
	require.NoError(t, err)

	longest := dinosaur.Longest(records)
	require.Len(t, longest, 1)
	assert.InDelta(t, 98.43, longest["Brachiosaurus"], 1e-9)

	assert.Equal(t,
		"Xenoceratops (ZEE-no-SEH-ruh-tops)\nXenoceratops had horns and a bony frill with elaborate ornamentation of projections, knobs, and spikes. It lived in the Early Cretaceous period, over 77.5 million years ago.",
		dinosaur.Describe(records, "U9vuZmgKwUr"))

	assert.Equal(t, []any{"YLtkN9R37", "GGvO1X9Zeh", "BFjjLjea-O", "V53DvdhV2A"}, dinosaur.AliveMya(records, 150))
	assert.Equal(t, []any{"WHQcpcOj0G"}, dinosaur.AliveMya(records, 65))
	assert.Equal(t, []any{"Dracorex"}, dinosaur.AliveMya(records, 65, "name"))
	assert.Equal(t, []any{"WHQcpcOj0G"}, dinosaur.AliveMya(records, 65, "unknown-key"))
}

func TestEmbedded_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Embedded{}.Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFile_YAML(t *testing.T) {
	path := writeFixture(t, "dinos.yaml", `
- dinosaurId: a1
  name: Alphasaurus
  pronunciation: AL-fa
  lengthInMeters: 4
  period: Late Jurassic
  mya: [150]
  info: First.
`)

	records, err := (&File{Path: path}).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "a1", records[0].ID)
	assert.Equal(t, []float64{150}, records[0].Mya)
}

func TestFile_JSON(t *testing.T) {
	path := writeFixture(t, "dinos.json", `[
  {"dinosaurId": "b2", "name": "Betasaurus", "pronunciation": "BAY-ta", "meaningOfName": "second lizard",
   "diet": "herbivorous", "lengthInMeters": 7.5, "period": "Early Cretaceous", "mya": [125, 112], "info": "Second."}
]`)

	records, err := (&File{Path: path}).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, dinosaur.Record{
		ID: "b2", Name: "Betasaurus", Pronunciation: "BAY-ta", MeaningOfName: "second lizard",
		Diet: "herbivorous", LengthInMeters: 7.5, Period: "Early Cretaceous",
		Mya: []float64{125, 112}, Info: "Second.",
	}, records[0])
}

func TestFile_Errors(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{"missing file", filepath.Join(t.TempDir(), "missing.yaml")},
		{"unsupported extension", writeFixture(t, "dinos.csv", "a,b")},
		{"not a sequence", writeFixture(t, "dinos.yaml", "name: Solo")},
		{"unknown field", writeFixture(t, "dinos.yaml", "- dinosaurId: x\n  wingspan: 3\n")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := (&File{Path: tt.path}).Load(context.Background())
			assert.Error(t, err)
		})
	}
}

func TestDecode_Empty(t *testing.T) {
	records, err := Decode([]byte("[]"))
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestFromConfig(t *testing.T) {
	log := logger.NewNop()

	cfg := config.DefaultConfig()
	loader, err := FromConfig(cfg, log)
	require.NoError(t, err)
	assert.IsType(t, Embedded{}, loader)

	cfg.Data.Source = config.SourceFile
	cfg.Data.Path = "dinos.yaml"
	loader, err = FromConfig(cfg, log)
	require.NoError(t, err)
	assert.Equal(t, &File{Path: "dinos.yaml"}, loader)

	cfg.Data.Path = ""
	_, err = FromConfig(cfg, log)
	assert.Error(t, err)

	cfg.Data.Source = config.SourceMySQL
	loader, err = FromConfig(cfg, log)
	require.NoError(t, err)
	mysqlLoader, ok := loader.(*database.Loader)
	require.True(t, ok)
	assert.Equal(t, "dinosaurs", mysqlLoader.Config.Table)

	cfg.Data.Source = "ftp"
	_, err = FromConfig(cfg, log)
	assert.Error(t, err)
}
