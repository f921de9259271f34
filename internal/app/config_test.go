package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{name: "defaults to all", cfg: Config{ScenePaths: []string{"scene"}}},
		{name: "legend needs no scene", cfg: Config{Mode: ModeLegend}},
		{name: "missing scene", cfg: Config{Mode: ModeVisible}, wantErr: "ScenePaths is a required"},
		{name: "unknown mode", cfg: Config{Mode: "some"}, wantErr: `unknown mode "some"`},
		{
			name:    "selected without object",
			cfg:     Config{Mode: ModeSelected, ScenePaths: []string{"s"}, Bones: []string{"A"}},
			wantErr: "exactly one armature",
		},
		{
			name:    "selected without bones",
			cfg:     Config{Mode: ModeSelected, ScenePaths: []string{"s"}, Objects: []string{"Rig"}},
			wantErr: "at least one bone",
		},
		{
			name:    "bad rankdir",
			cfg:     Config{ScenePaths: []string{"s"}, RankDir: "UP"},
			wantErr: `invalid rankdir "UP"`,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cfg, err := NewConfig(tc.cfg)
			if tc.wantErr != "" {
				assert.ErrorContains(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, cfg.Mode)
		})
	}
}
