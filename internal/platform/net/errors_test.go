package net_test

import (
	"errors"
	"net/http"
	"testing"

	perr "csvforge/internal/platform/errors"
	pnet "csvforge/internal/platform/net"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "nil error -> 200",
			err:  nil,
			want: http.StatusOK,
		},
		{
			name: "generic error -> 500",
			err:  errors.New("boom"),
			want: http.StatusInternalServerError,
		},
		{
			name: "missing input file -> 404",
			err:  perr.NotFoundf("no such file"),
			want: http.StatusNotFound,
		},
		{
			name: "unknown serializer kind -> 422",
			err:  perr.UnknownFormatf("nope"),
			want: http.StatusUnprocessableEntity,
		},
		{
			name: "empty dataset -> 400",
			err:  perr.EmptyDatasetf("nothing loaded"),
			want: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pnet.HTTPStatus(tt.err); got != tt.want {
				t.Fatalf("want %d got %d", tt.want, got)
			}
		})
	}
}
