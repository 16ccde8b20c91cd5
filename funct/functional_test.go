package funct

import (
	"errors"
	"reflect"
	"strconv"
	"testing"
)

func TestMap(t *testing.T) {
	got, err := Map([]string{"1", "2", "3"}, strconv.Atoi)
	if err != nil {
		t.Fatalf("Map: %v", err)
	}
	if want := []int{1, 2, 3}; !reflect.DeepEqual(got, want) {
		t.Errorf("Map = %v, want %v", got, want)
	}

	_, err = Map([]string{"1", "x"}, strconv.Atoi)
	if err == nil {
		t.Error("expected the transformer error")
	}
}

func TestMapEmpty(t *testing.T) {
	got, err := Map([]string{}, func(x string) (int, error) {
		return 0, errors.New("never called")
	})
	if err != nil {
		t.Fatalf("Map: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("Map = %v, want empty slice", got)
	}
}

func TestIndexAndSome(t *testing.T) {
	values := []string{"a", "b", "c"}
	if i := Index(values, func(x string) bool { return x == "b" }); i != 1 {
		t.Errorf("Index = %d, want 1", i)
	}
	if i := Index(values, func(x string) bool { return x == "z" }); i != -1 {
		t.Errorf("Index = %d, want -1", i)
	}
	if !Some(values, func(x string) bool { return x == "c" }) {
		t.Error("Some = false, want true")
	}
}

func TestUniq(t *testing.T) {
	got := Uniq([]string{"s1", "s2", "s1", "s3", "s2"})
	if want := []string{"s1", "s2", "s3"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Uniq = %v, want %v", got, want)
	}
	if got := Uniq[string](nil); got == nil || len(got) != 0 {
		t.Errorf("Uniq(nil) = %v, want empty slice", got)
	}
}
