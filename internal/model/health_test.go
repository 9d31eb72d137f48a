package model

import (
	"math"
	"testing"
)

func TestHealth_Subtract(t *testing.T) {
	h := NewHealth(100)

	if died := h.Subtract(40); died {
		t.Fatal("Subtract(40) reported death")
	}
	if h.Current() != 60 {
		t.Errorf("Current() = %v, want 60", h.Current())
	}
	if got := h.Percentage(); got != 0.6 {
		t.Errorf("Percentage() = %v, want 0.6", got)
	}

	if died := h.Subtract(80); !died {
		t.Fatal("Subtract(80) should kill")
	}
	if h.Current() != 0 {
		t.Errorf("Current() after death = %v, want 0 (clamped)", h.Current())
	}
	if !h.Dead() {
		t.Error("Dead() = false after lethal damage")
	}

	if died := h.Subtract(10); died {
		t.Error("second death transition must not happen")
	}
	if h.Current() != 0 {
		t.Errorf("Current() changed after death: %v", h.Current())
	}
}

func TestHealth_ExactlyZeroKills(t *testing.T) {
	h := NewHealth(50)
	if !h.Subtract(50) {
		t.Error("damage equal to health should kill")
	}
}

func TestHealth_IgnoresNonPositive(t *testing.T) {
	h := NewHealth(100)

	for _, amount := range []float64{0, -10, math.NaN()} {
		if h.Subtract(amount) {
			t.Errorf("Subtract(%v) reported death", amount)
		}
	}
	if h.Current() != 100 {
		t.Errorf("Current() = %v, want 100", h.Current())
	}
}

func TestNewHealth_MinimumOne(t *testing.T) {
	h := NewHealth(0)
	if h.Max() != 1 || h.Current() != 1 {
		t.Errorf("NewHealth(0) = %v/%v, want 1/1", h.Current(), h.Max())
	}
}

func TestDamageEvent_Applicable(t *testing.T) {
	tests := []struct {
		amount float64
		want   bool
	}{
		{10, true},
		{0.001, true},
		{0, false},
		{-1, false},
		{math.NaN(), false},
	}
	for _, tt := range tests {
		if got := (DamageEvent{Amount: tt.amount}).Applicable(); got != tt.want {
			t.Errorf("Applicable(%v) = %v, want %v", tt.amount, got, tt.want)
		}
	}
}
