package version

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfoString(t *testing.T) {
	tests := []struct {
		name string
		info Info
		want string
	}{
		{name: "release", info: Info{Version: "1.2.3", BuildDate: "261019", Release: true}, want: "nebula-1.2.3"},
		{name: "development", info: Info{Version: "1.2.3", BuildDate: "261019"}, want: "nebula-1.2.3-pulsar.261019"},
		{name: "snapshot", info: Info{Version: "1.2.3", BuildDate: "261019", GitHash: "abc1234", Snapshot: true}, want: "nebula-1.2.3-pulsar.261019.abc1234"},
		{name: "snapshot without hash", info: Info{Version: "1.2.3", BuildDate: "261019", Snapshot: true}, want: "nebula-1.2.3-pulsar.261019.dev"},
		{name: "snapshot wins over release", info: Info{Version: "1.2.3", BuildDate: "261019", Snapshot: true, Release: true, GitHash: "f00"}, want: "nebula-1.2.3-pulsar.261019.f00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.info.String())
		})
	}
}

func TestCurrent(t *testing.T) {
	assert.Regexp(t, regexp.MustCompile(`^nebula-`+regexp.QuoteMeta(Version)+`-pulsar\.\d{6}$`), String())
}

func TestShort(t *testing.T) {
	assert.Equal(t, "0123456", Short("0123456789abcdef"))
	assert.Equal(t, "abc", Short("abc"))
}
