package numeric

import (
	"encoding/json"
	"errors"
	"math"
	"testing"
)

func TestInt(t *testing.T) {
	tests := []struct {
		name    string
		in      any
		want    int
		wantErr error
	}{
		{name: "int", in: 42, want: 42},
		{name: "negative int8", in: int8(-7), want: -7},
		{name: "int16", in: int16(300), want: 300},
		{name: "int32", in: int32(-70000), want: -70000},
		{name: "int64", in: int64(1 << 30), want: 1 << 30},
		{name: "uint", in: uint(9), want: 9},
		{name: "uint8", in: uint8(255), want: 255},
		{name: "uint16", in: uint16(65535), want: 65535},
		{name: "uint32", in: uint32(70000), want: 70000},
		{name: "uint64 overflow", in: uint64(math.MaxUint64), wantErr: ErrOverflow},
		{name: "integral float", in: 2000.0, want: 2000},
		{name: "integral float32", in: float32(-3), want: -3},
		{name: "fractional float", in: 1.5, wantErr: ErrNotInteger},
		{name: "infinity", in: math.Inf(1), wantErr: ErrNotInteger},
		{name: "nan", in: math.NaN(), wantErr: ErrNotNumber},
		{name: "huge float", in: 1e30, wantErr: ErrOverflow},
		{name: "json integer", in: json.Number("17"), want: 17},
		{name: "json float", in: json.Number("17.0"), want: 17},
		{name: "json fraction", in: json.Number("0.25"), wantErr: ErrNotInteger},
		{name: "json garbage", in: json.Number("x"), wantErr: ErrNotNumber},
		{name: "string", in: "12", wantErr: ErrNotNumber},
		{name: "bool", in: true, wantErr: ErrNotNumber},
		{name: "nil", in: nil, wantErr: ErrNotNumber},
		{name: "slice", in: []int{1}, wantErr: ErrNotNumber},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Int(tt.in)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("got err=%v want %v", err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("got %d want %d", got, tt.want)
			}
		})
	}
}

func TestIsNumber(t *testing.T) {
	numbers := []any{0, int8(1), uint64(2), 1.5, float32(0.5), math.Inf(-1), json.Number("3")}
	for _, v := range numbers {
		if !IsNumber(v) {
			t.Errorf("IsNumber(%#v)=false want true", v)
		}
	}
	others := []any{nil, "1", true, math.NaN(), json.Number("nope"), []any{1}, map[string]int{}}
	for _, v := range others {
		if IsNumber(v) {
			t.Errorf("IsNumber(%#v)=true want false", v)
		}
	}
}
