package ie

import (
	"encoding/hex"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type scalarFixture struct {
	Name       string `yaml:"name"`
	TypeName   string `yaml:"type"`
	Hex        string `yaml:"hex"`
	WantUint8  *uint8 `yaml:"want_uint8"`
	WantUint16 *uint16 `yaml:"want_uint16"`
	WantUint32 *uint32 `yaml:"want_uint32"`
}

type scalarFixtureFile struct {
	Cases []scalarFixture `yaml:"cases"`
}

var fixtureTypeByName = map[string]Type{
	"PDRID":      PDRID,
	"Precedence": Precedence,
	"Cause":      Cause,
}

// TestScalarFixtures decodes the wire bytes in testdata/scalar_fixtures.yaml
// through the generic IE framing and checks the fixed-width accessor each
// case names, rather than duplicating the expectation in Go source.
func TestScalarFixtures(t *testing.T) {
	raw, err := os.ReadFile("testdata/scalar_fixtures.yaml")
	require.NoError(t, err)

	var file scalarFixtureFile
	require.NoError(t, yaml.Unmarshal(raw, &file))
	require.NotEmpty(t, file.Cases)

	for _, c := range file.Cases {
		c := c
		t.Run(c.Name, func(t *testing.T) {
			wire, err := hex.DecodeString(c.Hex)
			require.NoError(t, err)

			decoded, err := Unmarshal(wire)
			require.NoError(t, err)
			assert.Equal(t, fixtureTypeByName[c.TypeName], decoded.Type)

			switch {
			case c.WantUint8 != nil:
				got, err := decoded.AsUint8()
				require.NoError(t, err)
				assert.Equal(t, *c.WantUint8, got)
			case c.WantUint16 != nil:
				got, err := decoded.AsUint16()
				require.NoError(t, err)
				assert.Equal(t, *c.WantUint16, got)
			case c.WantUint32 != nil:
				got, err := decoded.AsUint32()
				require.NoError(t, err)
				assert.Equal(t, *c.WantUint32, got)
			}
		})
	}
}
