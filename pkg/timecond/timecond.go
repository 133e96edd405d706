package timecond

import (
	"golang.org/x/text/unicode/norm"
	"strings"
)

// Flag is a single temporal requirement derived from offer text
type Flag uint8

const (
	// FlagWeekend requires Friday, Saturday or Sunday
	FlagWeekend Flag = 1 << iota

	// FlagWeekday requires Monday to Thursday
	FlagWeekday

	// FlagTuesday requires Tuesday ("Golden Tuesday" offers)
	FlagTuesday

	// FlagSummer requires June, July or August
	FlagSummer

	// FlagAutumn requires September, October or November
	FlagAutumn

	// FlagHoliday requires one of the fixed solar holidays
	FlagHoliday
)

// allFlags is also the order in which unmet flags are reported
var allFlags = []Flag{
	FlagWeekend,
	FlagWeekday,
	FlagTuesday,
	FlagSummer,
	FlagAutumn,
	FlagHoliday,
}

func (f Flag) String() string {
	switch f {
	case FlagWeekend:
		return "weekend"
	case FlagWeekday:
		return "weekday"
	case FlagTuesday:
		return "tuesday"
	case FlagSummer:
		return "summer"
	case FlagAutumn:
		return "autumn"
	case FlagHoliday:
		return "holiday"
	default:
		return "unknown"
	}
}

// Condition is a set of flags, the zero value has no temporal requirement
type Condition uint8

// NewCondition ...
func NewCondition(flags ...Flag) Condition {
	var c Condition
	for _, f := range flags {
		c |= Condition(f)
	}
	return c
}

// Has ...
func (c Condition) Has(f Flag) bool {
	return c&Condition(f) != 0
}

// IsEmpty ...
func (c Condition) IsEmpty() bool {
	return c == 0
}

// Flags returns the flags of the set in reporting order
func (c Condition) Flags() []Flag {
	var result []Flag
	for _, f := range allFlags {
		if c.Has(f) {
			result = append(result, f)
		}
	}
	return result
}

func (c Condition) String() string {
	names := make([]string, 0, len(allFlags))
	for _, f := range c.Flags() {
		names = append(names, f.String())
	}
	return "[" + strings.Join(names, ",") + "]"
}

type keywordRule struct {
	flag     Flag
	keywords []string
}

var keywordRules = []keywordRule{
	{flag: FlagWeekend, keywords: []string{"weekend", "cuối tuần"}},
	{flag: FlagWeekday, keywords: []string{"weekday", "ngày thường", "tuesday", "thứ 3", "thứ ba"}},
	{flag: FlagSummer, keywords: []string{"summer", "mùa hè"}},
	{flag: FlagAutumn, keywords: []string{"autumn", "mùa thu"}},
	{flag: FlagHoliday, keywords: []string{"holiday", "ngày lễ", "dịp lễ", "tết"}},
}

var goldenTuesdayKeywords = []string{"golden tuesday", "thứ 3 vàng", "thứ ba vàng"}

func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}

// Parse derives the temporal requirements of an offer from its title and description.
// "Golden Tuesday" takes precedence over the generic weekday flag.
// The text is matched in NFC form, decomposed Vietnamese diacritics are accepted.
func Parse(title string, description string) Condition {
	text := strings.ToLower(norm.NFC.String(title + " " + description))

	var c Condition
	for _, rule := range keywordRules {
		if containsAny(text, rule.keywords) {
			c |= Condition(rule.flag)
		}
	}

	if containsAny(text, goldenTuesdayKeywords) {
		c &^= Condition(FlagWeekday)
		c |= Condition(FlagTuesday)
	}
	return c
}
