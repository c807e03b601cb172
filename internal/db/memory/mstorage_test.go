package memory

import (
	"errors"
	"testing"
)

type target struct {
	Key string
	Val int
}

func TestSet(t *testing.T) {
	type args struct {
		key string
		val *target
	}
	tests := []struct {
		name    string
		args    args
		wantErr error
	}{
		{
			name: "default",
			args: args{key: "key1", val: &target{Key: "key1", Val: 1}},
		}, {
			name:    "duplicate records",
			args:    args{key: "key1", val: &target{Key: "key1", Val: 2}},
			wantErr: ErrDuplicateKey,
		}, {
			name: "second key",
			args: args{key: "key2", val: &target{Key: "key2", Val: 3}},
		},
	}
	ms := NewMStorage()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Set[target](t.Context(), tt.args.key, tt.args.val, ms)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("%s: Set() error = %+v, wantErr %+v", tt.name, err, tt.wantErr)
			}

			if tt.wantErr == nil {
				val, getErr := Get[target](t.Context(), tt.args.key, ms)
				if getErr != nil {
					t.Fatal(getErr)
				}
				if val.Key != tt.args.val.Key || val.Val != tt.args.val.Val {
					t.Errorf("%s: Set() Val = %+v, want %+v", tt.name, val, tt.args.val)
				}
			}
		})
	}
}

func TestPut(t *testing.T) {
	ms := NewMStorage()
	if err := Set[target](t.Context(), "key1", &target{Key: "key1", Val: 1}, ms); err != nil {
		t.Fatal(err)
	}
	if err := Put[target](t.Context(), "key1", &target{Key: "key1", Val: 2}, ms); err != nil {
		t.Errorf("Put() error = %+v, want nil", err)
	}

	val, err := Get[target](t.Context(), "key1", ms)
	if err != nil {
		t.Fatal(err)
	}
	if val.Val != 2 {
		t.Errorf("Put() Val = %d, want 2", val.Val)
	}
	if ms.Len() != 1 {
		t.Errorf("Len() = %d, want 1", ms.Len())
	}
}

func TestGet_NotFound(t *testing.T) {
	ms := NewMStorage()
	if _, err := Get[target](t.Context(), "missing", ms); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() error = %+v, want ErrNotFound", err)
	}
}

func TestFilterAll(t *testing.T) {
	ms := NewMStorage()
	for _, v := range []target{{Key: "key1", Val: 1}, {Key: "key2", Val: 2}, {Key: "key3", Val: 3}} {
		if err := Set[target](t.Context(), v.Key, &v, ms); err != nil {
			t.Fatal(err)
		}
	}

	got, err := FilterAll[target](t.Context(), ms, func(val target) bool {
		return val.Val > 1
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Errorf("FilterAll() len = %d, want 2", len(got))
	}

	all, err := GetAll[target](t.Context(), ms)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 3 {
		t.Errorf("GetAll() len = %d, want 3", len(all))
	}
}
