package blogservice

// Aggregate statistics over an already-fetched list of blogs. These are pure
// functions: no I/O, deterministic for a given input order. Functions that
// pick a single winner return nil on an empty list.

type BlogSummary struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	Likes  int    `json:"likes"`
}

type AuthorBlogCount struct {
	Author string `json:"author"`
	Blogs  int    `json:"blogs"`
}

type AuthorLikeCount struct {
	Author string `json:"author"`
	Likes  int    `json:"likes"`
}

// TotalLikes sums the likes across all blogs.
func TotalLikes(blogs []Blog) int {
	total := 0
	for _, b := range blogs {
		total += b.Likes
	}
	return total
}

// FavoriteBlog returns the blog with the most likes. Ties go to the earliest
// blog in input order.
func FavoriteBlog(blogs []Blog) *BlogSummary {
	if len(blogs) == 0 {
		return nil
	}

	best := blogs[0]
	for _, b := range blogs[1:] {
		if b.Likes > best.Likes {
			best = b
		}
	}

	return &BlogSummary{Title: best.Title, Author: best.Author, Likes: best.Likes}
}

// MostBlogs returns the author with the greatest number of blogs. Ties go to
// the author whose running count reached the maximum first.
func MostBlogs(blogs []Blog) *AuthorBlogCount {
	if len(blogs) == 0 {
		return nil
	}

	counts := make(map[string]int)
	best := AuthorBlogCount{}
	for _, b := range blogs {
		counts[b.Author]++
		if counts[b.Author] > best.Blogs {
			best = AuthorBlogCount{Author: b.Author, Blogs: counts[b.Author]}
		}
	}

	return &best
}

// MostLikes returns the author with the greatest combined likes. Same tie
// policy as MostBlogs.
func MostLikes(blogs []Blog) *AuthorLikeCount {
	if len(blogs) == 0 {
		return nil
	}

	likes := make(map[string]int)
	best := AuthorLikeCount{Likes: -1}
	for _, b := range blogs {
		likes[b.Author] += b.Likes
		if likes[b.Author] > best.Likes {
			best = AuthorLikeCount{Author: b.Author, Likes: likes[b.Author]}
		}
	}

	return &best
}
