package core

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"radtui/internal/parser"
	"radtui/pkg/record"
)

const sampleUsers = `# FreeRADIUS users file
DEFAULT Framed-Protocol == PPP
	Framed-Protocol = PPP

## BEGIN CURSES ##
# printer1
aa:bb:cc:dd:ee:ff       Cleartext-Password := "aa:bb:cc:dd:ee:ff"
   Tunnel-Type = VLAN,
   Tunnel-Medium-Type = 6,
   Tunnel-Private-Group-Id = 20
stray line
11:22:33:44:55:66 Cleartext-Password := "11:22:33:44:55:66"
	Tunnel-Type = VLAN,
	Tunnel-Medium-Type = 6,
	Tunnel-Private-Group-Id = 30
## END CURSES ##

DEFAULT Auth-Type := Reject
`

func loadSample(t *testing.T) *Store {
	t.Helper()
	s, err := Load([]byte(sampleUsers), parser.DefaultMarkers())
	require.NoError(t, err)
	return s
}

func mustRecord(t *testing.T, mac, vlan, name string) record.Record {
	t.Helper()
	r, err := record.New(mac, vlan, name)
	require.NoError(t, err)
	return r
}

func TestLoad(t *testing.T) {
	s := loadSample(t)

	require.Equal(t, 2, s.Len())
	recs := s.Records()
	assert.Equal(t, "printer1", recs[0].DeviceName)
	assert.Equal(t, "aa:bb:cc:dd:ee:ff", recs[0].MAC)
	assert.Equal(t, "20", recs[0].VLAN)
	assert.Equal(t, "", recs[1].DeviceName)
	assert.Equal(t, "11:22:33:44:55:66", recs[1].MAC)
	assert.Equal(t, "30", recs[1].VLAN)
	assert.False(t, s.Dirty())
}

func TestLoadWithoutEndMarker(t *testing.T) {
	content := strings.Replace(sampleUsers, "## END CURSES ##\n", "", 1)

	s, err := Load([]byte(content), parser.DefaultMarkers())
	require.Error(t, err)
	assert.True(t, errors.Is(err, parser.ErrMarkersNotFound))
	assert.Nil(t, s)
}

func TestLoadEmptyRegion(t *testing.T) {
	s, err := Load([]byte("## BEGIN CURSES ##\n## END CURSES ##\n"), parser.DefaultMarkers())
	require.NoError(t, err)
	assert.Equal(t, 0, s.Len())

	out, err := s.Serialize()
	require.NoError(t, err)
	assert.Equal(t, "## BEGIN CURSES ##\n## END CURSES ##\n", string(out))
}

func TestSerializeCanonicalizesRegionOnly(t *testing.T) {
	s := loadSample(t)

	out, err := s.Serialize()
	require.NoError(t, err)

	want := `# FreeRADIUS users file
DEFAULT Framed-Protocol == PPP
	Framed-Protocol = PPP

## BEGIN CURSES ##
# printer1
aa:bb:cc:dd:ee:ff       Cleartext-Password := "aa:bb:cc:dd:ee:ff"
                        Tunnel-Type = VLAN,
                        Tunnel-Medium-Type = 6,
                        Tunnel-Private-Group-Id = 20
11:22:33:44:55:66       Cleartext-Password := "11:22:33:44:55:66"
                        Tunnel-Type = VLAN,
                        Tunnel-Medium-Type = 6,
                        Tunnel-Private-Group-Id = 30
## END CURSES ##

DEFAULT Auth-Type := Reject
`
	assert.Equal(t, want, string(out))
}

func TestSerializeIsIdempotent(t *testing.T) {
	s := loadSample(t)

	first, err := s.Serialize()
	require.NoError(t, err)
	second, err := s.Serialize()
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))

	// Reloading canonical output reproduces it byte for byte.
	reloaded, err := Load(first, parser.DefaultMarkers())
	require.NoError(t, err)
	third, err := reloaded.Serialize()
	require.NoError(t, err)
	assert.Equal(t, string(first), string(third))
}

func TestAddAppendsLast(t *testing.T) {
	s := loadSample(t)
	s.Add(mustRecord(t, "DE:AD:BE:EF:00:01", "99", "camera"))

	assert.True(t, s.Dirty())
	require.Equal(t, 3, s.Len())

	out, err := s.Serialize()
	require.NoError(t, err)
	text := string(out)
	region := text[strings.Index(text, "## BEGIN CURSES ##"):strings.Index(text, "## END CURSES ##")]
	assert.True(t, strings.HasSuffix(region,
		"# camera\n"+
			`de:ad:be:ef:00:01       Cleartext-Password := "de:ad:be:ef:00:01"`+"\n"+
			"                        Tunnel-Type = VLAN,\n"+
			"                        Tunnel-Medium-Type = 6,\n"+
			"                        Tunnel-Private-Group-Id = 99\n"), region)
}

func TestDelete(t *testing.T) {
	s := loadSample(t)

	require.NoError(t, s.Delete(0))
	assert.True(t, s.Dirty())
	require.Equal(t, 1, s.Len())
	got, err := s.Get(0)
	require.NoError(t, err)
	assert.Equal(t, "11:22:33:44:55:66", got.MAC)

	out, err := s.Serialize()
	require.NoError(t, err)
	assert.NotContains(t, string(out), "aa:bb:cc:dd:ee:ff")
	assert.NotContains(t, string(out), "# printer1")
}

func TestIndexOutOfRange(t *testing.T) {
	s := loadSample(t)

	for _, i := range []int{-1, 2, 100} {
		assert.ErrorIs(t, s.Delete(i), ErrIndexOutOfRange)
		assert.ErrorIs(t, s.Update(i, record.Record{}), ErrIndexOutOfRange)
		_, err := s.Get(i)
		assert.ErrorIs(t, err, ErrIndexOutOfRange)
	}
	assert.Equal(t, 2, s.Len())
	assert.False(t, s.Dirty())
}

func TestUpdate(t *testing.T) {
	s := loadSample(t)

	r, err := s.Get(1)
	require.NoError(t, err)
	r.VLAN = "31"
	r.SetDeviceName("switch")
	require.NoError(t, s.Update(1, r))
	assert.True(t, s.Dirty())

	out, err := s.Serialize()
	require.NoError(t, err)
	assert.Contains(t, string(out), "# switch\n11:22:33:44:55:66       Cleartext-Password")
	assert.Contains(t, string(out), "Tunnel-Private-Group-Id = 31\n## END CURSES ##")
}

func TestRecordsReturnsCopy(t *testing.T) {
	s := loadSample(t)

	recs := s.Records()
	recs[0].MAC = "00:00:00:00:00:00"

	got, err := s.Get(0)
	require.NoError(t, err)
	assert.Equal(t, "aa:bb:cc:dd:ee:ff", got.MAC)
}

func TestIndexOfMAC(t *testing.T) {
	s := loadSample(t)

	assert.Equal(t, 1, s.IndexOfMAC("11:22:33:44:55:66"))
	assert.Equal(t, 0, s.IndexOfMAC(" AA:BB:CC:DD:EE:FF"))
	assert.Equal(t, -1, s.IndexOfMAC("00:00:00:00:00:00"))
}

func TestMarkSaved(t *testing.T) {
	s := loadSample(t)
	s.Add(mustRecord(t, "aa:aa:aa:aa:aa:aa", "1", ""))
	require.True(t, s.Dirty())

	s.MarkSaved()
	assert.False(t, s.Dirty())
}
