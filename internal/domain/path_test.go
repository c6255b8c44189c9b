package domain

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPolicyForOS(t *testing.T) {
	t.Parallel()

	assert.Equal(t, CaseSensitive, PolicyForOS("linux"))
	assert.Equal(t, CaseInsensitive, PolicyForOS("darwin"))
	assert.Equal(t, CaseInsensitive, PolicyForOS("windows"))
}

func TestParseCasePolicy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw     string
		goos    string
		want    CasePolicy
		wantErr bool
	}{
		{raw: "", goos: "linux", want: CaseSensitive},
		{raw: "auto", goos: "darwin", want: CaseInsensitive},
		{raw: "Sensitive", goos: "darwin", want: CaseSensitive},
		{raw: " insensitive ", goos: "linux", want: CaseInsensitive},
		{raw: "maybe", goos: "linux", wantErr: true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.raw+"/"+tc.goos, func(t *testing.T) {
			t.Parallel()
			got, err := ParseCasePolicy(tc.raw, tc.goos)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidCasePolicy)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCasePolicyEqual(t *testing.T) {
	t.Parallel()

	assert.True(t, CaseInsensitive.Equal("/Users/Foo", "/users/foo"))
	assert.False(t, CaseSensitive.Equal("/Users/Foo", "/users/foo"))
	assert.True(t, CaseSensitive.Equal("/proj/", "/proj"))
	assert.False(t, CaseSensitive.Equal("", ""))
	assert.False(t, CaseInsensitive.Equal("/proj", ""))
}

func TestCasePolicyIsEqualOrParent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		policy    CasePolicy
		path      string
		candidate string
		want      bool
	}{
		{name: "equal", policy: CaseSensitive, path: "/foo/bar", candidate: "/foo/bar", want: true},
		{name: "parent", policy: CaseSensitive, path: "/foo/bar/x.txt", candidate: "/foo", want: true},
		{name: "trailing separator", policy: CaseSensitive, path: "/foo/bar/x.txt", candidate: "/foo/bar/", want: true},
		{name: "root owns everything", policy: CaseSensitive, path: "/foo/bar", candidate: "/", want: true},
		{name: "non boundary prefix", policy: CaseSensitive, path: "/foo/bar/x.txt", candidate: "/foo/ba", want: false},
		{name: "sibling", policy: CaseSensitive, path: "/foo/bar", candidate: "/foo/baz", want: false},
		{name: "child is not parent", policy: CaseSensitive, path: "/foo", candidate: "/foo/bar", want: false},
		{name: "case differs sensitive", policy: CaseSensitive, path: "/Users/Foo/a.txt", candidate: "/users/foo", want: false},
		{name: "case differs insensitive", policy: CaseInsensitive, path: "/Users/Foo/a.txt", candidate: "/users/foo", want: true},
		{name: "empty candidate", policy: CaseSensitive, path: "/foo", candidate: "", want: false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, tc.policy.IsEqualOrParent(tc.path, tc.candidate))
		})
	}
}

func TestAncestorsWalksToRoot(t *testing.T) {
	t.Parallel()

	got := slices.Collect(Ancestors("/a/b/c"))
	assert.Equal(t, []string{"/a/b/c", "/a/b", "/a", "/"}, got)
}

func TestAncestorsOfRootYieldsRootOnce(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"/"}, slices.Collect(Ancestors("/")))
}

func TestAncestorsStopsWhenConsumerStops(t *testing.T) {
	t.Parallel()

	var seen []string
	for dir := range Ancestors("/a/b/c") {
		seen = append(seen, dir)
		if dir == "/a/b" {
			break
		}
	}

	assert.Equal(t, []string{"/a/b/c", "/a/b"}, seen)
}
