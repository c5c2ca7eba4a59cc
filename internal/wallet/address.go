package wallet

import "fmt"

// FormatAddress shortens an address for display, e.g. 0x1234...abcd.
func FormatAddress(address string) string {
	if len(address) <= 10 {
		return address
	}
	return fmt.Sprintf("%s...%s", address[:6], address[len(address)-4:])
}
