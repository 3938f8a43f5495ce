package gitsync

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRepoRef(t *testing.T) {
	tests := []struct {
		name    string
		ref     string
		want    RepoRef
		wantErr bool
	}{
		{
			name: "https url",
			ref:  "https://github.com/acme/site",
			want: RepoRef{Owner: "acme", Name: "site"},
		},
		{
			name: "https url trailing slash",
			ref:  "https://github.com/acme/site/",
			want: RepoRef{Owner: "acme", Name: "site"},
		},
		{
			name: "https url with extra segments",
			ref:  "https://github.com/acme/site/tree/main/src",
			want: RepoRef{Owner: "acme", Name: "site"},
		},
		{
			name: "owner name shorthand",
			ref:  "acme/site",
			want: RepoRef{Owner: "acme", Name: "site"},
		},
		{
			name: "dot git suffix stripped",
			ref:  "https://github.com/acme/site.git",
			want: RepoRef{Owner: "acme", Name: "site"},
		},
		{
			name: "surrounding whitespace",
			ref:  "  acme/site  ",
			want: RepoRef{Owner: "acme", Name: "site"},
		},
		{
			name:    "empty",
			ref:     "",
			wantErr: true,
		},
		{
			name:    "single segment",
			ref:     "acme",
			wantErr: true,
		},
		{
			name:    "url with one path segment",
			ref:     "https://github.com/acme",
			wantErr: true,
		},
		{
			name:    "bare host",
			ref:     "https://github.com",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRepoRef(tt.ref)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidReference)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRepoRefString(t *testing.T) {
	assert.Equal(t, "acme/site", RepoRef{Owner: "acme", Name: "site"}.String())
}
