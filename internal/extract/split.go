package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jray-8/us-presidents-dataset/internal/model"
)

var (
	nameBirthDeath = regexp.MustCompile(`^(.*?)\s*\((?:(\d{4})–(\d{4})|b\. (\d{4}))\)`)
	termDash       = regexp.MustCompile(`\s*–\s*`)
)

// SplitNameBirthDeath parses a cell of the shape "Name (YYYY–YYYY)" or
// "Name (b. YYYY)" into its three parts. No match is a recoverable
// no-data outcome: all three results are nil.
func SplitNameBirthDeath(c model.Cell) (name *string, birth, death *int) {
	if c.Missing {
		return nil, nil, nil
	}

	m := nameBirthDeath.FindStringSubmatch(c.Value)
	if m == nil {
		return nil, nil, nil
	}

	name = &m[1]
	if m[2] != "" {
		birth = atoiPtr(m[2])
		death = atoiPtr(m[3])
	} else {
		birth = atoiPtr(m[4])
	}
	return name, birth, death
}

// SplitTerm parses a cell of the shape "<start>–<end>" into the two
// term dates as text. The literal end sentinel "Incumbent" means the
// term is still running and yields a nil end. Anything that does not
// split into exactly two parts yields nil for both.
func SplitTerm(c model.Cell) (start, end *string) {
	if c.Missing {
		return nil, nil
	}

	parts := termDash.Split(c.Value, -1)
	if len(parts) != 2 {
		return nil, nil
	}

	s := strings.TrimSpace(parts[0])
	start = &s
	if e := strings.TrimSpace(parts[1]); e != "Incumbent" {
		end = &e
	}
	return start, end
}

func atoiPtr(s string) *int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}
