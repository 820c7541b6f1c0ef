package record

import (
	"fmt"
	"strings"
)

const (
	// macPadding separates the MAC identity from the password attribute.
	macPadding = "       "
	// attrIndent is the fixed column of the reply attribute lines.
	attrIndent = "                        "

	tunnelTypeLine   = attrIndent + "Tunnel-Type = VLAN,"
	tunnelMediumLine = attrIndent + "Tunnel-Medium-Type = 6,"
)

// Record is one managed network-access entry of the users file.
type Record struct {
	Comment     string   // Raw label line, e.g. "# printer1"; empty when absent
	DeviceName  string   // Label derived from Comment
	MAC         string   // Lowercase xx:xx:xx:xx:xx:xx, also used as the password
	VLAN        string   // Decimal VLAN id, kept as text
	SourceLines []string // Lines the record was parsed from; nil for new records
}

// New builds a validated record from user input. The MAC is normalized to
// lowercase and the device name trimmed before validation.
func New(mac, vlan, deviceName string) (Record, error) {
	r := Record{
		MAC:  NormalizeMAC(mac),
		VLAN: strings.TrimSpace(vlan),
	}
	r.SetDeviceName(deviceName)

	if err := r.Validate(); err != nil {
		return Record{}, err
	}

	return r, nil
}

// DeviceNameFromComment strips the leading '#' and space characters of a
// comment line and trims what remains. An empty result means the comment
// carries no label.
func DeviceNameFromComment(comment string) string {
	return strings.TrimSpace(strings.TrimLeft(comment, "# "))
}

// SetDeviceName replaces the label and keeps Comment consistent with it.
func (r *Record) SetDeviceName(name string) {
	name = strings.TrimSpace(name)
	r.DeviceName = name
	if name == "" {
		r.Comment = ""
		return
	}
	r.Comment = "# " + name
}

// Validate checks the MAC and VLAN syntax.
func (r Record) Validate() error {
	if !IsValidMAC(r.MAC) {
		return fmt.Errorf("%w: %q", ErrInvalidMAC, r.MAC)
	}
	if !IsValidVLAN(r.VLAN) {
		return fmt.Errorf("%w: %q", ErrInvalidVLAN, r.VLAN)
	}
	return nil
}

// Lines renders the record in the canonical users-file form.
func (r Record) Lines() []string {
	lines := make([]string, 0, 5)
	if r.DeviceName != "" {
		lines = append(lines, "# "+r.DeviceName)
	}
	return append(lines,
		fmt.Sprintf("%s%sCleartext-Password := %q", r.MAC, macPadding, r.MAC),
		tunnelTypeLine,
		tunnelMediumLine,
		fmt.Sprintf("%sTunnel-Private-Group-Id = %s", attrIndent, r.VLAN),
	)
}

// String returns a single-line summary used in logs and plain listings.
func (r Record) String() string {
	if r.DeviceName == "" {
		return fmt.Sprintf("%s vlan=%s", r.MAC, r.VLAN)
	}
	return fmt.Sprintf("%s vlan=%s (%s)", r.MAC, r.VLAN, r.DeviceName)
}

// Render serializes records in order into the body of the managed region.
func Render(records []Record) []string {
	var lines []string
	for _, r := range records {
		lines = append(lines, r.Lines()...)
	}
	return lines
}
