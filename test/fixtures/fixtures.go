// Package fixtures provides canonical post records and raw API payloads for
// tests.
package fixtures

import "birdfeed/internal/domain"

// BasicTweet is a post with one mention, one hashtag, and one link, with
// indices matching the text exactly.
//
//	Hello @bob check #cool http://t.co/xyz
//	      6   10    17    22
//	                      23             38
func BasicTweet() domain.Tweet {
	return domain.Tweet{
		ID:        123,
		IDStr:     "123",
		CreatedAt: "Mon Sep 01 10:00:00 +0000 2025",
		Text:      "Hello @bob check #cool http://t.co/xyz",
		User: domain.User{
			ID:              42,
			IDStr:           "42",
			Name:            "Alice Example",
			ScreenName:      "alice",
			ProfileImageURL: "http://pbs.example.com/alice.jpg",
		},
		Entities: domain.Entities{
			URLs: []domain.URLEntity{{
				URL:         "http://t.co/xyz",
				ExpandedURL: "http://example.com/article",
				DisplayURL:  "example.com/article",
				Indices:     domain.Indices{23, 38},
			}},
			Hashtags: []domain.HashtagEntity{{
				Text:    "cool",
				Indices: domain.Indices{17, 22},
			}},
			UserMentions: []domain.MentionEntity{{
				ScreenName: "bob",
				Name:       "Bob Example",
				Indices:    domain.Indices{6, 10},
			}},
		},
	}
}

// MultibyteTweet starts with an emoji and carries accented characters, so
// every entity index only lines up if tokens are code points.
//
//	🎉 fête #déjà http://t.co/abc
//	0       7   12
//	              13             28
func MultibyteTweet() domain.Tweet {
	return domain.Tweet{
		IDStr:     "456",
		CreatedAt: "Mon Sep 01 11:00:00 +0000 2025",
		Text:      "🎉 fête #déjà http://t.co/abc",
		User: domain.User{
			IDStr:      "42",
			Name:       "Alice Example",
			ScreenName: "alice",
		},
		Entities: domain.Entities{
			URLs: []domain.URLEntity{{
				URL:         "http://t.co/abc",
				ExpandedURL: "http://example.com/fete",
				DisplayURL:  "example.com/fete",
				Indices:     domain.Indices{13, 28},
			}},
			Hashtags: []domain.HashtagEntity{{
				Text:    "déjà",
				Indices: domain.Indices{7, 12},
			}},
		},
	}
}

// VideoTweet links one YouTube and one Vimeo video.
func VideoTweet() domain.Tweet {
	t := domain.Tweet{
		IDStr:     "789",
		CreatedAt: "Mon Sep 01 12:00:00 +0000 2025",
		Text:      "http://t.co/yt and http://t.co/vm",
		User: domain.User{
			IDStr:      "43",
			Name:       "Bob Example",
			ScreenName: "bob",
		},
	}
	t.Entities.URLs = []domain.URLEntity{
		{
			URL:         "http://t.co/yt",
			ExpandedURL: "https://youtu.be/dQw4w9WgXcQ",
			DisplayURL:  "youtu.be/dQw4w9WgXcQ",
			Indices:     domain.Indices{0, 14},
		},
		{
			URL:         "http://t.co/vm",
			ExpandedURL: "https://vimeo.com/1185346",
			DisplayURL:  "vimeo.com/1185346",
			Indices:     domain.Indices{19, 33},
		},
	}
	return t
}

// MediaTweet carries one photo attachment with all four size classes.
func MediaTweet() domain.Tweet {
	t := BasicTweet()
	t.IDStr = "321"
	t.ID = 321
	t.Entities.Media = []domain.MediaEntity{{
		ID:            99,
		IDStr:         "99",
		MediaURL:      "http://pbs.example.com/photo.jpg",
		MediaURLHTTPS: "https://pbs.example.com/photo.jpg",
		URL:           "http://t.co/pic",
		DisplayURL:    "pic.example.com/photo",
		ExpandedURL:   "http://example.com/photo",
		Type:          "photo",
		Sizes: domain.MediaSizes{
			Small:  domain.MediaSize{W: 340, H: 226, Resize: "fit"},
			Medium: domain.MediaSize{W: 600, H: 399, Resize: "fit"},
			Large:  domain.MediaSize{W: 1024, H: 681, Resize: "fit"},
			Thumb:  domain.MediaSize{W: 150, H: 150, Resize: "crop"},
		},
	}}
	return t
}

// TimelineJSON is a raw user-timeline payload: a bare array of records.
func TimelineJSON() []byte {
	return []byte(`[
  {
    "id": 123,
    "id_str": "123",
    "created_at": "Mon Sep 01 10:00:00 +0000 2025",
    "text": "Hello @bob check #cool http://t.co/xyz",
    "user": {
      "id": 42,
      "id_str": "42",
      "name": "Alice Example",
      "screen_name": "alice",
      "profile_image_url": "http://pbs.example.com/alice.jpg"
    },
    "entities": {
      "urls": [
        {
          "url": "http://t.co/xyz",
          "expanded_url": "http://example.com/article",
          "display_url": "example.com/article",
          "indices": [23, 38]
        }
      ],
      "hashtags": [{"text": "cool", "indices": [17, 22]}],
      "user_mentions": [
        {"screen_name": "bob", "name": "Bob Example", "indices": [6, 10]}
      ]
    }
  },
  {
    "id": 789,
    "id_str": "789",
    "created_at": "Mon Sep 01 12:00:00 +0000 2025",
    "text": "http://t.co/yt and http://t.co/vm",
    "user": {"id": 43, "id_str": "43", "name": "Bob Example", "screen_name": "bob"},
    "entities": {
      "urls": [
        {
          "url": "http://t.co/yt",
          "expanded_url": "https://youtu.be/dQw4w9WgXcQ",
          "display_url": "youtu.be/dQw4w9WgXcQ",
          "indices": [0, 14]
        },
        {
          "url": "http://t.co/vm",
          "expanded_url": "https://vimeo.com/1185346",
          "display_url": "vimeo.com/1185346",
          "indices": [19, 33]
        }
      ]
    }
  }
]`)
}

// SearchJSON is a raw search payload: records wrapped in a statuses object.
func SearchJSON() []byte {
	return []byte(`{"statuses": ` + string(TimelineJSON()) + `}`)
}

// VimeoAPIResponse is the simple-API body for a single video lookup.
func VimeoAPIResponse() string {
	return `[{
  "id": 1185346,
  "title": "Fixture video",
  "thumbnail_small": "http://i.vimeocdn.com/video/1185346_100x75.jpg",
  "thumbnail_medium": "http://i.vimeocdn.com/video/1185346_200x150.jpg",
  "thumbnail_large": "http://i.vimeocdn.com/video/1185346_640.jpg"
}]`
}
