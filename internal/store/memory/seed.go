package memory

import (
	"time"

	"github.com/codecpt/portfolio-api/internal/domain/blog"
	"github.com/codecpt/portfolio-api/internal/domain/project"
	"github.com/codecpt/portfolio-api/internal/domain/techstack"
)

func strptr(s string) *string { return &s }

// Seed loads the demo portfolio content so a fresh in-memory instance is
// not empty. Id counters are advanced past the highest seeded id, so later
// creates keep the monotonic-id guarantee.
func (s *Store) Seed() {
	now := time.Now()

	stacks := []techstack.TechStack{
		{ID: 1, Name: "React", Icon: "⚛️", Progress: 95, Category: "frontend", Color: "bg-blue-500/20", CreatedAt: now},
		{ID: 2, Name: "Next.js", Icon: "▲", Progress: 90, Category: "frontend", Color: "bg-gray-500/20", CreatedAt: now},
		{ID: 3, Name: "JavaScript", Icon: "🟨", Progress: 92, Category: "frontend", Color: "bg-yellow-500/20", CreatedAt: now},
		{ID: 4, Name: "CSS/Tailwind", Icon: "🎨", Progress: 95, Category: "frontend", Color: "bg-blue-500/20", CreatedAt: now},
		{ID: 5, Name: "Node.js", Icon: "🟢", Progress: 88, Category: "backend", Color: "bg-green-500/20", CreatedAt: now},
		{ID: 6, Name: "Laravel", Icon: "🔴", Progress: 85, Category: "backend", Color: "bg-red-500/20", CreatedAt: now},
		{ID: 7, Name: "PHP", Icon: "🟣", Progress: 85, Category: "backend", Color: "bg-purple-500/20", CreatedAt: now},
		{ID: 8, Name: "Express.js", Icon: "🚀", Progress: 87, Category: "backend", Color: "bg-green-500/20", CreatedAt: now},
		{ID: 9, Name: "MongoDB", Icon: "🍃", Progress: 80, Category: "database", Color: "bg-green-500/20", CreatedAt: now},
		{ID: 10, Name: "MySQL", Icon: "🐬", Progress: 83, Category: "database", Color: "bg-orange-500/20", CreatedAt: now},
		{ID: 11, Name: "Git", Icon: "📦", Progress: 90, Category: "tools", Color: "bg-orange-500/20", CreatedAt: now},
		{ID: 12, Name: "Mobile Dev", Icon: "📱", Progress: 85, Category: "mobile", Color: "bg-green-500/20", CreatedAt: now},
	}

	posts := []blog.Post{
		{
			ID:          1,
			Title:       "Mobile Development with Acode and Termux",
			Slug:        "mobile-development-acode-termux",
			Excerpt:     "Discover how to set up a complete mobile development environment using Acode editor and Termux terminal for on-the-go coding.",
			Content:     "Full content for mobile development post...",
			Category:    "Mobile Development",
			PublishedAt: time.Date(2023, 12, 15, 0, 0, 0, 0, time.UTC),
			Featured:    true,
		},
		{
			ID:          2,
			Title:       "Advanced React Patterns and Best Practices",
			Slug:        "advanced-react-patterns",
			Excerpt:     "Explore advanced React patterns, hooks, and performance optimization techniques for building scalable applications.",
			Content:     "Full content for React patterns post...",
			Category:    "React",
			PublishedAt: time.Date(2023, 12, 10, 0, 0, 0, 0, time.UTC),
			Featured:    false,
		},
		{
			ID:          3,
			Title:       "Building RESTful APIs with Node.js and Express",
			Slug:        "restful-apis-nodejs-express",
			Excerpt:     "Learn how to create robust, scalable RESTful APIs using Node.js, Express, and modern database technologies.",
			Content:     "Full content for API development post...",
			Category:    "Backend",
			PublishedAt: time.Date(2023, 12, 5, 0, 0, 0, 0, time.UTC),
			Featured:    false,
		},
	}

	projects := []project.Project{
		{
			ID:           1,
			Title:        "E-Commerce Platform",
			Description:  "A comprehensive e-commerce solution built with React and Laravel, featuring payment integration, inventory management, and responsive design.",
			Category:     "fullstack",
			Technologies: []string{"React", "Laravel", "MySQL", "Stripe API", "Tailwind CSS"},
			Features: []string{
				"User authentication and authorization",
				"Product catalog with search and filtering",
				"Shopping cart and checkout process",
				"Payment integration with Stripe",
				"Admin dashboard for inventory management",
				"Order tracking and management",
				"Responsive design for all devices",
			},
			LiveURL:   strptr("https://ecommerce-demo.com"),
			GithubURL: strptr("https://github.com/codecpt/ecommerce-platform"),
			ImageURL:  strptr("https://images.unsplash.com/photo-1556742049-0cfed4f6a45d?auto=format&fit=crop&w=800&h=600"),
			Featured:  true,
			CreatedAt: now,
		},
		{
			ID:           2,
			Title:        "Task Management App",
			Description:  "Modern task management application with drag-and-drop functionality, real-time updates, and team collaboration features.",
			Category:     "frontend",
			Technologies: []string{"Next.js", "Node.js", "MongoDB", "Socket.io", "Tailwind CSS"},
			Features: []string{
				"Drag-and-drop task boards",
				"Real-time collaboration",
				"Team member management",
				"Due date tracking and notifications",
				"Progress tracking and analytics",
				"File attachments and comments",
				"Mobile-responsive interface",
			},
			LiveURL:   strptr("https://taskapp-demo.com"),
			GithubURL: strptr("https://github.com/codecpt/task-management"),
			ImageURL:  strptr("https://images.unsplash.com/photo-1611224923853-80b023f02d71?auto=format&fit=crop&w=800&h=600"),
			Featured:  false,
			CreatedAt: now,
		},
		{
			ID:           3,
			Title:        "Mobile Weather App",
			Description:  "Cross-platform mobile weather application with location services, forecasts, and beautiful animations.",
			Category:     "mobile",
			Technologies: []string{"React Native", "Weather API", "AsyncStorage", "Lottie Animations"},
			Features: []string{
				"Current weather conditions",
				"7-day weather forecast",
				"Location-based weather data",
				"Beautiful weather animations",
				"Offline data caching",
				"Dark and light theme support",
				"Push notifications for weather alerts",
			},
			LiveURL:   strptr("https://play.google.com/store/apps/details?id=com.codecpt.weather"),
			GithubURL: strptr("https://github.com/codecpt/weather-app"),
			ImageURL:  strptr("https://images.unsplash.com/photo-1551650975-87deedd944c3?auto=format&fit=crop&w=800&h=600"),
			Featured:  false,
			CreatedAt: now,
		},
	}

	s.stacksMu.Lock()
	for _, t := range stacks {
		s.stacks[t.ID] = t
		if t.ID >= s.nextStackID {
			s.nextStackID = t.ID + 1
		}
	}
	s.stacksMu.Unlock()

	s.postsMu.Lock()
	for _, p := range posts {
		s.posts[p.ID] = p
		if p.ID >= s.nextPostID {
			s.nextPostID = p.ID + 1
		}
	}
	s.postsMu.Unlock()

	s.projectsMu.Lock()
	for _, p := range projects {
		s.projects[p.ID] = p
		if p.ID >= s.nextProjectID {
			s.nextProjectID = p.ID + 1
		}
	}
	s.projectsMu.Unlock()
}
