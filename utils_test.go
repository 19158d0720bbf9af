package perfband

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_formatDuration(t *testing.T) {
	type args struct {
		d    time.Duration
		unit TimeUnit
	}
	tests := []struct {
		name string
		args args
		want string
	}{
		{
			name: "auto",
			args: args{d: 1500 * time.Microsecond, unit: TimeUnitAuto},
			want: "1.5ms",
		},
		{
			name: "milliseconds",
			args: args{d: 1500 * time.Microsecond, unit: TimeUnitMilliseconds},
			want: "1.500ms",
		},
		{
			name: "microseconds",
			args: args{d: 1500 * time.Microsecond, unit: TimeUnitMicroseconds},
			want: "1500.0µs",
		},
		{
			name: "zero",
			args: args{d: 0, unit: TimeUnitAuto},
			want: "0s",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equalf(t, tt.want, formatDuration(tt.args.d, tt.args.unit), "formatDuration(%v, %v)", tt.args.d, tt.args.unit)
		})
	}
}

func Test_formatThroughput(t *testing.T) {
	type args struct {
		bytes    uint64
		hasBytes bool
		elapsed  time.Duration
	}
	tests := []struct {
		name string
		args args
		want string
	}{
		{
			name: "plain bytes per second",
			args: args{bytes: 1000, hasBytes: true, elapsed: time.Second},
			want: "1000 B/s",
		},
		{
			name: "mebibytes per second",
			args: args{bytes: 8 * 1024 * 1024, hasBytes: true, elapsed: 2 * time.Second},
			want: "4.00 MiB/s",
		},
		{
			name: "gibibytes per second",
			args: args{bytes: 2 * 1024 * 1024 * 1024, hasBytes: true, elapsed: time.Second},
			want: "2.00 GiB/s",
		},
		{
			name: "no bytes",
			args: args{bytes: 0, hasBytes: false, elapsed: time.Second},
			want: "",
		},
		{
			name: "zero elapsed",
			args: args{bytes: 1000, hasBytes: true, elapsed: 0},
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatThroughput(tt.args.bytes, tt.args.hasBytes, tt.args.elapsed))
		})
	}
}

func Test_formatBytes(t *testing.T) {
	tests := []struct {
		name string
		n    uint64
		want string
	}{
		{
			name: "bytes",
			n:    512,
			want: "512 B",
		},
		{
			name: "kibibytes",
			n:    4096,
			want: "4.000 KiB",
		},
		{
			name: "mebibytes",
			n:    3 * 1024 * 1024,
			want: "3.000 MiB",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatBytes(tt.n))
		})
	}
}

func Test_formatPercent(t *testing.T) {
	assert.Equal(t, "25.00%", formatPercent(250*time.Millisecond, time.Second))
	assert.Equal(t, "", formatPercent(time.Millisecond, 0))
}
