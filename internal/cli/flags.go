package cli

import (
	"github.com/spf13/pflag"

	"github.com/alexmarten/strive/internal/domain"
)

// categoryFlag is a pflag.Value that validates categories at parse
// time. With allowAll set it also accepts the "All" filter value.
type categoryFlag struct {
	val      *string
	allowAll bool
}

var _ pflag.Value = (*categoryFlag)(nil)

func newCategoryFlag(val *string, allowAll bool) *categoryFlag {
	return &categoryFlag{val: val, allowAll: allowAll}
}

func (f *categoryFlag) String() string { return *f.val }

func (f *categoryFlag) Set(s string) error {
	if f.allowAll && s == domain.CategoryAll {
		*f.val = s
		return nil
	}
	c, err := domain.ParseCategory(s)
	if err != nil {
		return err
	}
	*f.val = string(c)
	return nil
}

func (f *categoryFlag) Type() string { return "category" }

// sortFlag is a pflag.Value for the goal listing sort key.
type sortFlag struct {
	val *string
}

var _ pflag.Value = (*sortFlag)(nil)

func newSortFlag(val *string) *sortFlag {
	return &sortFlag{val: val}
}

func (f *sortFlag) String() string { return *f.val }

func (f *sortFlag) Set(s string) error {
	k, err := domain.ParseSortKey(s)
	if err != nil {
		return err
	}
	*f.val = string(k)
	return nil
}

func (f *sortFlag) Type() string { return "sort" }
