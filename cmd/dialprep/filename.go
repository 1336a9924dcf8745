package main

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Characters that are unsafe in filenames on common filesystems.
var unsafeFilenameChars = regexp.MustCompile(`[<>:"/\\|?*]`)

// outputFilename builds the dialer-ready artifact name:
// YYYYMMDD_<ReferenceCode>_Mobiles_Roor-Ready.csv
// The reference code is sanitized for filesystem use and spaces become
// underscores.
func outputFilename(referenceCode string, at time.Time) string {
	code := unsafeFilenameChars.ReplaceAllString(referenceCode, "")
	code = strings.ReplaceAll(code, " ", "_")
	return fmt.Sprintf("%s_%s_Mobiles_Roor-Ready.csv", at.Format("20060102"), code)
}
