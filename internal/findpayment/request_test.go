package findpayment

import (
	"reflect"
	"testing"
	"time"

	"github.com/msto63/findpay/internal/model"
)

func mustIndex(t *testing.T, oneBased int) model.Index {
	t.Helper()
	idx, err := model.IndexFromOneBased(oneBased)
	if err != nil {
		t.Fatalf("IndexFromOneBased(%d) error = %v", oneBased, err)
	}
	return idx
}

func TestRequest_Accessors(t *testing.T) {
	idx := mustIndex(t, 3)
	date := model.NewDate(2023, time.December, 30)
	req := newRequest(idx, DateFilter{Date: date})

	if _, ok := req.Amount(); ok {
		t.Error("Amount() reported a date request as amount")
	}
	if _, ok := req.Remark(); ok {
		t.Error("Remark() reported a date request as remark")
	}
	got, ok := req.Date()
	if !ok || !got.Equal(date) {
		t.Errorf("Date() = %v, %v", got, ok)
	}
	if req.String() != "3 d/2023-12-30" {
		t.Errorf("String() = %q", req.String())
	}
}

func TestRequest_Equal(t *testing.T) {
	one := mustIndex(t, 1)
	two := mustIndex(t, 2)

	tests := []struct {
		name string
		a, b Request
		want bool
	}{
		{
			name: "same amount written differently",
			a:    newRequest(one, AmountFilter{Amount: model.MustParseAmount("23.5")}),
			b:    newRequest(one, AmountFilter{Amount: model.MustParseAmount("23.50")}),
			want: true,
		},
		{
			name: "different index",
			a:    newRequest(one, RemarkFilter{Remark: "x"}),
			b:    newRequest(two, RemarkFilter{Remark: "x"}),
			want: false,
		},
		{
			name: "different kind",
			a:    newRequest(one, RemarkFilter{Remark: "5.00"}),
			b:    newRequest(one, AmountFilter{Amount: model.MustParseAmount("5")}),
			want: false,
		},
		{
			name: "zero value",
			a:    Request{},
			b:    Request{},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilterKinds(t *testing.T) {
	if got := FilterKinds(); !reflect.DeepEqual(got, []FilterKind{FilterAmount, FilterRemark, FilterDate}) {
		t.Errorf("FilterKinds() = %v", got)
	}
	want := []string{"a/", "r/", "d/"}
	for i, p := range Prefixes() {
		if p.String() != want[i] {
			t.Errorf("Prefixes()[%d] = %q, want %q", i, p, want[i])
		}
	}
	if FilterKind(9).String() != "unknown" {
		t.Error("unexpected name for an unknown kind")
	}

	defer func() {
		if recover() == nil {
			t.Error("Prefix() on an unknown kind should panic")
		}
	}()
	_ = FilterKind(9).Prefix()
}
