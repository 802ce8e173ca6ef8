package cli

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/alexanderramin/choreplan/internal/domain"
	"github.com/spf13/pflag"
)

// enumValue is a pflag.Value restricted to a fixed set of string constants.
type enumValue[T ~string] struct {
	target  *T
	allowed []T
	name    string
}

func newEnumValue[T ~string](target *T, def T, allowed []T, name string) *enumValue[T] {
	*target = def
	return &enumValue[T]{target: target, allowed: allowed, name: name}
}

func (v *enumValue[T]) String() string { return string(*v.target) }

func (v *enumValue[T]) Set(s string) error {
	val := T(strings.ToLower(strings.TrimSpace(s)))
	if !slices.Contains(v.allowed, val) {
		return fmt.Errorf("must be one of %s", joinEnum(v.allowed))
	}
	*v.target = val
	return nil
}

func (v *enumValue[T]) Type() string { return v.name }

func joinEnum[T ~string](vals []T) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = string(v)
	}
	return strings.Join(parts, "|")
}

var (
	_ pflag.Value = (*enumValue[domain.Zone])(nil)
	_ pflag.Value = (*dayValue)(nil)
)

// dayValue holds a day slot (0 = Monday) parsed from "mon", "Tuesday" or "3".
type dayValue struct {
	day *int
}

func newDayValue(target *int, def int) *dayValue {
	*target = def
	return &dayValue{day: target}
}

func (v *dayValue) String() string { return strings.ToLower(domain.DayLabels[*v.day]) }

func (v *dayValue) Set(s string) error {
	d, err := domain.ParseDay(s)
	if err != nil {
		return err
	}
	*v.day = d
	return nil
}

func (v *dayValue) Type() string { return "day" }

// dayFlag registers --day/-d defaulting to today.
func dayFlag(fs *pflag.FlagSet, app *App, target *int) {
	fs.VarP(newDayValue(target, app.today()), "day", "d",
		"Day of the week: mon..sun or 1..7 (ignored outside the weekly view)")
}

// positionArg parses a 1-based position argument.
func positionArg(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	return n, err == nil && n > 0
}
