// Package passports solves 2020/04: count passports that carry every
// required field, then those whose fields are also valid.
package passports

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/vk/puzzlegrid/internal/registry"
	"github.com/vk/puzzlegrid/internal/textutil"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the puzzle with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterPuzzle(&registry.Puzzle{
		ID:    "2020/04",
		Title: "Passport Processing",
		Part1: registry.Simple(Part1),
		Part2: registry.Simple(Part2),
	})
}

// Passport holds the fields of one passport. Country ID is optional.
type Passport struct {
	BirthYear      string `field:"byr" validate:"required,year=1920-2002"`
	IssueYear      string `field:"iyr" validate:"required,year=2010-2020"`
	ExpirationYear string `field:"eyr" validate:"required,year=2020-2030"`
	Height         string `field:"hgt" validate:"required,height"`
	HairColor      string `field:"hcl" validate:"required,haircolor"`
	EyeColor       string `field:"ecl" validate:"required,oneof=amb blu brn gry grn hzl oth"`
	PassportID     string `field:"pid" validate:"required,len=9,number"`
	CountryID      string `field:"cid"`
}

var requiredFields = []string{"byr", "iyr", "eyr", "hgt", "hcl", "ecl", "pid"}

var (
	passportValidate *validator.Validate
	hairColorRegex   = regexp.MustCompile(`^#[0-9a-f]{6}$`)
	heightRegex      = regexp.MustCompile(`^(\d+)(cm|in)$`)
)

func init() {
	passportValidate = validator.New()
	for tag, fn := range map[string]validator.Func{
		"year":      validateYear,
		"height":    validateHeight,
		"haircolor": validateHairColor,
	} {
		if err := passportValidate.RegisterValidation(tag, fn); err != nil {
			panic(fmt.Sprintf("passports: registering %s validator: %v", tag, err))
		}
	}
}

// validateYear accepts a four-digit year within the "lo-hi" tag parameter.
func validateYear(fl validator.FieldLevel) bool {
	lo, hi, ok := strings.Cut(fl.Param(), "-")
	if !ok {
		return false
	}
	s := fl.Field().String()
	if len(s) != 4 {
		return false
	}
	return inRange(s, lo, hi)
}

func validateHeight(fl validator.FieldLevel) bool {
	m := heightRegex.FindStringSubmatch(fl.Field().String())
	if m == nil {
		return false
	}
	if m[2] == "cm" {
		return inRange(m[1], "150", "193")
	}
	return inRange(m[1], "59", "76")
}

func validateHairColor(fl validator.FieldLevel) bool {
	return hairColorRegex.MatchString(fl.Field().String())
}

func inRange(s, lo, hi string) bool {
	n, err := strconv.Atoi(s)
	if err != nil {
		return false
	}
	l, err := strconv.Atoi(lo)
	if err != nil {
		return false
	}
	h, err := strconv.Atoi(hi)
	if err != nil {
		return false
	}
	return n >= l && n <= h
}

// record is a passport as raw key/value pairs.
type record map[string]string

func parseRecords(input string) ([]record, error) {
	var records []record
	for _, block := range textutil.Blocks(input) {
		rec := make(record)
		for _, line := range block {
			for _, field := range strings.Fields(line) {
				key, value, ok := strings.Cut(field, ":")
				if !ok || key == "" {
					return nil, textutil.Syntaxf("invalid field %q", field)
				}
				rec[key] = value
			}
		}
		records = append(records, rec)
	}
	return records, nil
}

func (rec record) complete() bool {
	for _, f := range requiredFields {
		if _, ok := rec[f]; !ok {
			return false
		}
	}
	return true
}

func (rec record) passport() Passport {
	return Passport{
		BirthYear:      rec["byr"],
		IssueYear:      rec["iyr"],
		ExpirationYear: rec["eyr"],
		Height:         rec["hgt"],
		HairColor:      rec["hcl"],
		EyeColor:       rec["ecl"],
		PassportID:     rec["pid"],
		CountryID:      rec["cid"],
	}
}

// Validate checks every field rule.
func (p Passport) Validate() error {
	return passportValidate.Struct(p)
}

// Part1 counts passports carrying every required field.
func Part1(input string) (int, error) {
	records, err := parseRecords(input)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, rec := range records {
		if rec.complete() {
			n++
		}
	}
	return n, nil
}

// Part2 counts passports whose required fields are present and valid.
func Part2(input string) (int, error) {
	records, err := parseRecords(input)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, rec := range records {
		if rec.complete() && rec.passport().Validate() == nil {
			n++
		}
	}
	return n, nil
}
