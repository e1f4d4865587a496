package warmup_test

import (
	"errors"
	"reflect"
	"testing"

	. "github.com/comalice/warmup"
)

func TestNames(t *testing.T) {
	want := []string{"base", "century", "color", "fibonacci", "phone", "smiles", "sum", "tictactoe", "transpose"}
	if got := Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v want %v", got, want)
	}
}

func TestParams(t *testing.T) {
	params, ok := Params("base")
	if !ok {
		t.Fatal("base not registered")
	}
	if !reflect.DeepEqual(params, []string{"n", "radix"}) {
		t.Errorf("got %v", params)
	}

	params[0] = "mutated"
	again, _ := Params("base")
	if again[0] != "n" {
		t.Error("Params leaked the table's slice")
	}

	if _, ok := Params("nope"); ok {
		t.Error("unknown name reported as registered")
	}
}

func TestCallUnknown(t *testing.T) {
	_, err := Call("nope", 1)
	if !errors.Is(err, ErrUnknownFunc) {
		t.Errorf("got %v want ErrUnknownFunc", err)
	}
	if KindOf(err) != "unknown" {
		t.Errorf("got kind %q want unknown", KindOf(err))
	}
}

func TestCallArity(t *testing.T) {
	tests := []struct {
		name string
		args []any
	}{
		{name: "sum", args: []any{1}},
		{name: "sum", args: []any{1, 2, 3}},
		{name: "century", args: nil},
		{name: "tictactoe", args: []any{nil, nil}},
	}
	for _, tt := range tests {
		if _, err := Call(tt.name, tt.args...); !errors.Is(err, ErrType) {
			t.Errorf("Call(%q, %v) err=%v want type error", tt.name, tt.args, err)
		}
	}
}

func TestCallTicTacToeDecodedBoard(t *testing.T) {
	board := []any{
		[]any{"o", "x", "x"},
		[]any{"x", "o", "x"},
		[]any{"x", "o", "o"},
	}
	got, err := Call("tictactoe", board)
	if err != nil {
		t.Fatal(err)
	}
	if got != "o" {
		t.Errorf("got %v want o", got)
	}

	if _, err := Call("tictactoe", "xxx"); !errors.Is(err, ErrType) {
		t.Errorf("flat board err=%v want type error", err)
	}
}

func TestTakesText(t *testing.T) {
	for _, name := range Names() {
		want := name == "color" || name == "phone" || name == "smiles"
		if got := TakesText(name); got != want {
			t.Errorf("TakesText(%q)=%v want %v", name, got, want)
		}
	}
	if TakesText("nope") {
		t.Error("unknown name reported as text")
	}
}
