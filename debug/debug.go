package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Tags   bool
	Rows   bool
	Decode bool
	Encode bool
}

var d *debug

func init() {
	d = &debug{}
	d.Tags = boolEnv("MSD_DEBUG_TAGS")
	d.Rows = boolEnv("MSD_DEBUG_ROWS")
	d.Decode = boolEnv("MSD_DEBUG_DECODE")
	d.Encode = boolEnv("MSD_DEBUG_ENCODE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Tags() bool {
	return d.Tags
}
func Rows() bool {
	return d.Rows
}
func Decode() bool {
	return d.Decode
}
func Encode() bool {
	return d.Encode
}
