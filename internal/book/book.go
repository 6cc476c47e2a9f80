package book

// Grade levels sold in the catalog.
const (
	MinGrade = 1
	MaxGrade = 9
)

// Book represents a catalog entry. Price is a decimal string with two
// fraction digits so money arithmetic never goes through floats.
type Book struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Price       string `json:"price"`
	Grade       int    `json:"grade"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
}

// Patch carries a partial book update. Every field is a pointer so we can
// distinguish "not provided" (nil) from "intentionally set". There is no
// ID field: the identifier can never be patched.
type Patch struct {
	Title       *string `json:"title"`
	Price       *string `json:"price"`
	Grade       *int    `json:"grade"`
	Description *string `json:"description"`
	ImageURL    *string `json:"imageUrl"`
}

// Seed returns the sample catalog loaded at process start. The store is
// in-memory only, so this is rebuilt on every boot.
func Seed() []Book {
	return []Book{
		{
			ID:          "1",
			Title:       "Math Adventures",
			Price:       "24.99",
			Grade:       1,
			Description: "Fun and engaging math exercises for first graders",
			ImageURL:    "https://images.unsplash.com/photo-1596464716127-f2a82984de30?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300",
		},
		{
			ID:          "2",
			Title:       "Science Explorers",
			Price:       "28.99",
			Grade:       3,
			Description: "Discover the wonders of science through hands-on activities",
			ImageURL:    "https://images.unsplash.com/photo-1481627834876-b7833e8f5570?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300",
		},
		{
			ID:          "3",
			Title:       "Language Arts Mastery",
			Price:       "32.99",
			Grade:       5,
			Description: "Comprehensive reading, writing, and grammar skills",
			ImageURL:    "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300",
		},
		{
			ID:          "4",
			Title:       "Algebra Foundations",
			Price:       "36.99",
			Grade:       7,
			Description: "Introduction to algebraic concepts and problem solving",
			ImageURL:    "https://images.unsplash.com/photo-1635070041078-e363dbe005cb?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300",
		},
		{
			ID:          "5",
			Title:       "Reading Adventures",
			Price:       "22.99",
			Grade:       2,
			Description: "Exciting stories to improve reading comprehension",
			ImageURL:    "https://images.unsplash.com/photo-1544716278-ca5e3f4abd8c?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300",
		},
		{
			ID:          "6",
			Title:       "World History",
			Price:       "42.99",
			Grade:       9,
			Description: "Comprehensive study of global civilizations and cultures",
			ImageURL:    "https://images.unsplash.com/photo-1461360370896-922624d12aa1?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300",
		},
		{
			ID:          "7",
			Title:       "Social Studies Explorer",
			Price:       "29.99",
			Grade:       4,
			Description: "Learn about communities, geography, and citizenship",
			ImageURL:    "https://images.unsplash.com/photo-1526304640581-d334cdbbf45e?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300",
		},
		{
			ID:          "8",
			Title:       "Earth Science",
			Price:       "34.99",
			Grade:       6,
			Description: "Explore geology, weather, and environmental science",
			ImageURL:    "https://images.unsplash.com/photo-1446776653964-20c1d3a81b06?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300",
		},
	}
}
