package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/prodsched/internal/domain"
	"github.com/alexanderramin/prodsched/internal/service"
	"github.com/spf13/pflag"
)

// dateFlag is an optional YYYY-MM-DD flag; Ptr returns nil until it is set.
type dateFlag struct {
	value time.Time
	set   bool
}

var _ pflag.Value = (*dateFlag)(nil)

func (d *dateFlag) String() string {
	if !d.set {
		return ""
	}
	return d.value.Format(domain.DateLayout)
}

func (d *dateFlag) Set(s string) error {
	t, err := domain.ParseDate(strings.TrimSpace(s))
	if err != nil {
		return err
	}
	d.value, d.set = t, true
	return nil
}

func (d *dateFlag) Type() string { return "date" }

func (d *dateFlag) Ptr() *time.Time {
	if !d.set {
		return nil
	}
	t := d.value
	return &t
}

// itemsFlag collects repeated --item REF:QTY values.
type itemsFlag struct {
	items []service.ItemRequest
}

var _ pflag.Value = (*itemsFlag)(nil)

func (f *itemsFlag) String() string {
	parts := make([]string, len(f.items))
	for i, it := range f.items {
		parts[i] = fmt.Sprintf("%s:%d", it.Reference, it.Quantity)
	}
	return strings.Join(parts, ",")
}

func (f *itemsFlag) Set(s string) error {
	for _, spec := range strings.Split(s, ",") {
		item, err := parseItem(spec)
		if err != nil {
			return err
		}
		f.items = append(f.items, item)
	}
	return nil
}

func (f *itemsFlag) Type() string { return "ref:qty" }

func parseItem(spec string) (service.ItemRequest, error) {
	spec = strings.TrimSpace(spec)
	idx := strings.LastIndex(spec, ":")
	if idx <= 0 || idx == len(spec)-1 {
		return service.ItemRequest{}, fmt.Errorf("item %q must be REF:QTY: %w", spec, domain.ErrValidation)
	}
	qty, err := strconv.Atoi(spec[idx+1:])
	if err != nil {
		return service.ItemRequest{}, fmt.Errorf("item %q: quantity must be a whole number: %w", spec, domain.ErrValidation)
	}
	return service.ItemRequest{Reference: strings.TrimSpace(spec[:idx]), Quantity: qty}, nil
}

// parseRank reads a 1-based queue position argument.
func parseRank(arg string) (int, error) {
	n, err := strconv.Atoi(strings.TrimPrefix(strings.TrimSpace(arg), "#"))
	if err != nil {
		return 0, fmt.Errorf("rank %q must be a number: %w", arg, domain.ErrValidation)
	}
	return n, nil
}
