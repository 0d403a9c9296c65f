package usecase

import (
	"strings"
	"testing"

	"go.mongodb.org/mongo-driver/bson"

	"main/dto"
)

func TestDeriveExcerpt(t *testing.T) {
	t.Run("short content is returned unchanged", func(t *testing.T) {
		content := "a short post"
		if got := DeriveExcerpt(content); got != content {
			t.Errorf("expected %q, got %q", content, got)
		}
	})

	t.Run("content of exactly 200 characters is not truncated", func(t *testing.T) {
		content := strings.Repeat("x", 200)
		if got := DeriveExcerpt(content); got != content {
			t.Errorf("expected unchanged content, got %q", got)
		}
	})

	t.Run("long content is cut to 200 characters plus ellipsis", func(t *testing.T) {
		content := strings.Repeat("x", 201)
		want := strings.Repeat("x", 200) + "..."
		if got := DeriveExcerpt(content); got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	})

	t.Run("truncation counts characters not bytes", func(t *testing.T) {
		content := strings.Repeat("ü", 250)
		want := strings.Repeat("ü", 200) + "..."
		if got := DeriveExcerpt(content); got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	})
}

func TestBuildBlogPostFilter(t *testing.T) {
	t.Run("empty options build an empty filter", func(t *testing.T) {
		filter := buildBlogPostFilter(dto.BlogPostListOptions{})
		if len(filter) != 0 {
			t.Errorf("expected empty filter, got %v", filter)
		}
	})

	t.Run("search matches title, content and author", func(t *testing.T) {
		filter := buildBlogPostFilter(dto.BlogPostListOptions{Search: "golang"})
		or, ok := filter["$or"].([]bson.M)
		if !ok {
			t.Fatalf("expected $or clause, got %v", filter)
		}
		if len(or) != 3 {
			t.Fatalf("expected 3 branches, got %d", len(or))
		}
		fields := map[string]bool{}
		for _, branch := range or {
			for field := range branch {
				fields[field] = true
			}
		}
		for _, field := range []string{"title", "content", "author"} {
			if !fields[field] {
				t.Errorf("missing %s branch in %v", field, or)
			}
		}
	})

	t.Run("search is case-insensitive and literal", func(t *testing.T) {
		filter := buildBlogPostFilter(dto.BlogPostListOptions{Search: "c++"})
		or := filter["$or"].([]bson.M)
		match := or[0]["title"].(bson.M)
		if match["$options"] != "i" {
			t.Errorf("expected case-insensitive match, got %v", match)
		}
		if match["$regex"] == "c++" {
			t.Errorf("regex metacharacters should be quoted, got %v", match["$regex"])
		}
	})

	t.Run("tag filters by membership", func(t *testing.T) {
		filter := buildBlogPostFilter(dto.BlogPostListOptions{Tag: "go"})
		tags, ok := filter["tags"].(bson.M)
		if !ok {
			t.Fatalf("expected tags clause, got %v", filter)
		}
		in, ok := tags["$in"].([]string)
		if !ok || len(in) != 1 || in[0] != "go" {
			t.Errorf("expected $in [go], got %v", tags)
		}
	})

	t.Run("author is a substring match", func(t *testing.T) {
		filter := buildBlogPostFilter(dto.BlogPostListOptions{Author: "Ann"})
		match, ok := filter["author"].(bson.M)
		if !ok || match["$options"] != "i" {
			t.Errorf("expected case-insensitive author match, got %v", filter)
		}
	})
}

func TestParseSort(t *testing.T) {
	cases := []struct {
		name  string
		input string
		field string
		order int
	}{
		{"default is newest first", "", "createdAt", -1},
		{"bare field is ascending", "title", "title", 1},
		{"dash prefix is descending", "-updatedAt", "updatedAt", -1},
		{"lone dash falls back to default", "-", "createdAt", -1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sort := parseSort(tc.input)
			if len(sort) != 1 {
				t.Fatalf("expected single sort key, got %v", sort)
			}
			if sort[0].Key != tc.field || sort[0].Value != tc.order {
				t.Errorf("expected {%s %d}, got {%s %v}",
					tc.field, tc.order, sort[0].Key, sort[0].Value)
			}
		})
	}
}
