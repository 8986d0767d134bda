package zipcat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatSet(t *testing.T) {
	tests := []struct {
		in      string
		want    format
		wantErr bool
	}{
		{in: "text", want: formatText},
		{in: "Json", want: formatJSON},
		{in: "YAML", want: formatYAML},
		{in: "csv", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			f := formatText
			err := f.Set(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, formatText, f, "failed Set must not change the value")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, f)
			assert.Equal(t, string(tt.want), f.String())
		})
	}
}
