package storage

import (
	"context"
	"fmt"
	"time"

	"radioai/internal/models"
)

type articleFixture struct {
	Title      string
	Content    string
	Summary    string
	SourceURL  string
	SourceName string
	Category   string
	ImageURL   string
	Duration   int
	ReadTime   int
	Age        time.Duration
}

var sampleArticles = []articleFixture{
	{
		Title:      "OpenAI Announces Revolutionary Language Model with Enhanced Reasoning",
		Content:    "OpenAI has unveiled its latest breakthrough in artificial intelligence with the release of a new language model that demonstrates unprecedented reasoning capabilities. The model, which has been in development for over two years, shows remarkable improvements in logical thinking, mathematical problem-solving, and complex decision-making processes. This advancement represents a significant leap forward in AI technology, potentially transforming industries from healthcare to finance.",
		Summary:    "The latest AI breakthrough promises to transform how we interact with artificial intelligence, featuring improved logical reasoning and multilingual capabilities...",
		SourceURL:  "https://techcrunch.com/ai-breakthrough",
		SourceName: "TechCrunch",
		Category:   "Technology",
		ImageURL:   "https://images.unsplash.com/photo-1677442136019-21780ecad995?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=400",
		Duration:   240,
		ReadTime:   4,
		Age:        120 * time.Minute,
	},
	{
		Title:      "Global Markets Rally as Tech Stocks Lead Recovery",
		Content:    "Major indices surged following positive earnings reports from technology giants, with the NASDAQ posting its best day in six months. Apple, Microsoft, and Google all exceeded analyst expectations, driving broader market optimism. The rally comes amid growing confidence in the tech sector's resilience and innovation capabilities.",
		Summary:    "Major indices surge following positive earnings reports from technology giants, with analysts predicting continued growth through Q4...",
		SourceURL:  "https://bloomberg.com/markets-rally",
		SourceName: "Bloomberg",
		Category:   "Business",
		ImageURL:   "https://images.unsplash.com/photo-1559526324-4b87b5e36e44?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=400",
		Duration:   180,
		ReadTime:   3,
		Age:        60 * time.Minute,
	},
	{
		Title:      "Breakthrough Gene Therapy Shows Promise for Rare Diseases",
		Content:    "Clinical trials demonstrate significant improvement in patients with inherited genetic disorders, offering hope for thousands of families worldwide. The therapy uses advanced CRISPR technology to correct genetic mutations at the cellular level, showing remarkable success rates in early-stage trials.",
		Summary:    "Clinical trials demonstrate significant improvement in patients with inherited genetic disorders, offering hope for thousands of families...",
		SourceURL:  "https://nature.com/gene-therapy",
		SourceName: "Nature Medicine",
		Category:   "Health",
		ImageURL:   "https://images.unsplash.com/photo-1582719471384-894fbb16e074?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=400",
		Duration:   360,
		ReadTime:   6,
		Age:        180 * time.Minute,
	},
	{
		Title:      "NASA's James Webb Telescope Discovers Ancient Galaxy Formation",
		Content:    "The James Webb Space Telescope has captured images of galaxy formation from over 13 billion years ago, providing unprecedented insights into the early universe. These observations challenge existing theories about cosmic evolution and offer new understanding of how the first galaxies formed after the Big Bang.",
		Summary:    "Webb telescope reveals galaxy formation from 13 billion years ago, challenging current cosmic evolution theories...",
		SourceURL:  "https://nasa.gov/webb-discovery",
		SourceName: "NASA",
		Category:   "Science",
		ImageURL:   "https://images.unsplash.com/photo-1446776653964-20c1d3a81b06?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=400",
		Duration:   300,
		ReadTime:   5,
		Age:        240 * time.Minute,
	},
	{
		Title:      "World Cup Final Breaks Global Viewership Records",
		Content:    "The FIFA World Cup final attracted over 1.5 billion viewers worldwide, setting new records for sports broadcasting. The thrilling match went to penalties, keeping audiences on the edge of their seats for over two hours. Social media engagement reached unprecedented levels during the event.",
		Summary:    "World Cup final attracts record 1.5 billion viewers, becoming most-watched sporting event in history...",
		SourceURL:  "https://fifa.com/worldcup-final",
		SourceName: "FIFA",
		Category:   "Sports",
		ImageURL:   "https://images.unsplash.com/photo-1551698618-1dfe5d97d256?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=400",
		Duration:   220,
		ReadTime:   4,
		Age:        300 * time.Minute,
	},
	{
		Title:      "Climate Summit Reaches Historic Agreement on Carbon Emissions",
		Content:    "World leaders at COP29 have reached a landmark agreement to reduce global carbon emissions by 50% within the next decade. The accord includes binding commitments from 195 countries and establishes a $500 billion fund for clean energy transition in developing nations.",
		Summary:    "COP29 climate summit produces historic agreement with 50% emission reduction target and $500B clean energy fund...",
		SourceURL:  "https://un.org/cop29-agreement",
		SourceName: "United Nations",
		Category:   "Breaking",
		ImageURL:   "https://images.unsplash.com/photo-1569163139394-de44aa904459?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=400",
		Duration:   280,
		ReadTime:   5,
		Age:        30 * time.Minute,
	},
	{
		Title:      "Major Breakthrough in Quantum Computing Achieved",
		Content:    "Researchers at MIT have successfully demonstrated quantum error correction at scale, bringing practical quantum computing significantly closer to reality. The breakthrough solves one of the most persistent challenges in quantum technology and could revolutionize computing within the next decade.",
		Summary:    "MIT achieves quantum error correction breakthrough, bringing practical quantum computing closer to reality...",
		SourceURL:  "https://mit.edu/quantum-breakthrough",
		SourceName: "MIT Technology Review",
		Category:   "Technology",
		ImageURL:   "https://images.unsplash.com/photo-1635070041078-e363dbe005cb?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=400",
		Duration:   320,
		ReadTime:   6,
		Age:        360 * time.Minute,
	},
	{
		Title:      "Hollywood Strike Ends with Groundbreaking AI Usage Agreement",
		Content:    "The entertainment industry reaches a historic deal regarding AI use in film and television production. The agreement establishes new guidelines for AI-generated content while protecting actors' rights and establishing fair compensation structures for AI-assisted productions.",
		Summary:    "Entertainment industry reaches historic AI usage agreement, ending months-long strike with new protection guidelines...",
		SourceURL:  "https://variety.com/hollywood-ai-agreement",
		SourceName: "Variety",
		Category:   "Entertainment",
		ImageURL:   "https://images.unsplash.com/photo-1489599540877-b75e7b3e4522?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=400",
		Duration:   260,
		ReadTime:   4,
		Age:        420 * time.Minute,
	},
	{
		Title:      "Revolutionary Cancer Treatment Shows 95% Success Rate",
		Content:    "A new immunotherapy treatment for aggressive forms of cancer has shown remarkable success in Phase III trials, with 95% of patients showing complete remission. The treatment combines cutting-edge gene therapy with personalized medicine approaches.",
		Summary:    "New immunotherapy treatment achieves 95% success rate in cancer trials, offering hope for aggressive forms...",
		SourceURL:  "https://nejm.org/cancer-breakthrough",
		SourceName: "New England Journal of Medicine",
		Category:   "Health",
		ImageURL:   "https://images.unsplash.com/photo-1559757175-0eb30cd8c063?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=400",
		Duration:   340,
		ReadTime:   6,
		Age:        480 * time.Minute,
	},
	{
		Title:      "Major Political Reform Bill Passes with Bipartisan Support",
		Content:    "Congress passes comprehensive electoral reform legislation with overwhelming bipartisan support, addressing voting rights, campaign finance, and redistricting. The bill represents the most significant political reform in decades and aims to strengthen democratic institutions.",
		Summary:    "Congress passes major electoral reform bill with bipartisan support, addressing voting rights and campaign finance...",
		SourceURL:  "https://politico.com/reform-bill",
		SourceName: "Politico",
		Category:   "Politics",
		ImageURL:   "https://images.unsplash.com/photo-1529107386315-e1a2ed48a620?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=400",
		Duration:   290,
		ReadTime:   5,
		Age:        540 * time.Minute,
	},
	{
		Title:      "Electric Vehicle Sales Surpass Traditional Cars for First Time",
		Content:    "Electric vehicle sales have officially surpassed traditional gasoline-powered cars in global markets for the first time in automotive history. This milestone represents a fundamental shift in consumer preferences and accelerating adoption of sustainable transportation.",
		Summary:    "EV sales surpass traditional car sales globally for first time, marking historic shift in automotive industry...",
		SourceURL:  "https://automotive-news.com/ev-milestone",
		SourceName: "Automotive News",
		Category:   "Business",
		ImageURL:   "https://images.unsplash.com/photo-1593941707882-a5bac6861d75?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=400",
		Duration:   200,
		ReadTime:   4,
		Age:        600 * time.Minute,
	},
	{
		Title:      "Mars Mission Reveals Evidence of Ancient Microbial Life",
		Content:    "NASA's Perseverance rover has discovered compelling evidence of ancient microbial life on Mars, marking one of the most significant scientific discoveries in human history. The findings suggest that Mars once hosted conditions suitable for life and may have implications for understanding life's origin in the universe.",
		Summary:    "NASA rover discovers evidence of ancient microbial life on Mars, marking historic scientific breakthrough...",
		SourceURL:  "https://nasa.gov/mars-life-discovery",
		SourceName: "NASA",
		Category:   "Science",
		ImageURL:   "https://images.unsplash.com/photo-1614728263952-84ea256f9679?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=400",
		Duration:   380,
		ReadTime:   7,
		Age:        660 * time.Minute,
	},}

var (
	sampleFavorites = []int64{1, 3, 6}
	sampleHistory   = []struct {
		ArticleID int64
		Progress  float64
		Completed bool
	}{
		{1, 100, true},
		{2, 42.5, false},
		{3, 78, false},
		{4, 100, true},
		{5, 12, false},
	}
)

// Seed loads the demo fixtures: one user, twelve articles, a few favorites
// and history entries, two podcasts and two live streams. It does nothing
// when the store already holds articles.
func Seed(ctx context.Context, s Storage, now time.Time) error {
	existing, err := s.GetArticles(ctx, ArticleQuery{Limit: 1})
	if err != nil {
		return fmt.Errorf("failed to inspect store: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	user, err := s.CreateUser(ctx, models.InsertUser{Username: "demo", Password: "password"})
	if err != nil {
		return fmt.Errorf("failed to seed user: %w", err)
	}

	ids := make([]int64, 0, len(sampleArticles))
	for _, f := range sampleArticles {
		imageURL, duration, readTime := f.ImageURL, f.Duration, f.ReadTime
		a, err := s.CreateArticle(ctx, models.InsertArticle{
			Title:       f.Title,
			Content:     f.Content,
			Summary:     f.Summary,
			SourceURL:   f.SourceURL,
			SourceName:  f.SourceName,
			Category:    f.Category,
			ImageURL:    &imageURL,
			Duration:    &duration,
			ReadTime:    &readTime,
			PublishedAt: now.Add(-f.Age),
		})
		if err != nil {
			return fmt.Errorf("failed to seed article %q: %w", f.Title, err)
		}
		ids = append(ids, a.ID)
	}

	for _, idx := range sampleFavorites {
		if _, err := s.AddFavorite(ctx, models.InsertFavorite{UserID: user.ID, ArticleID: ids[idx-1]}); err != nil {
			return fmt.Errorf("failed to seed favorite: %w", err)
		}
	}

	for i, h := range sampleHistory {
		_, err := s.UpdateProgress(ctx, models.InsertListeningHistory{
			UserID:     user.ID,
			ArticleID:  ids[h.ArticleID-1],
			Progress:   h.Progress,
			Completed:  h.Completed,
			ListenedAt: now.Add(-time.Duration(i+1) * time.Hour),
		})
		if err != nil {
			return fmt.Errorf("failed to seed history: %w", err)
		}
	}

	for _, p := range samplePodcasts() {
		if _, err := s.CreatePodcast(ctx, p); err != nil {
			return fmt.Errorf("failed to seed podcast %q: %w", p.Title, err)
		}
	}

	for _, ls := range sampleLiveStreams() {
		if _, err := s.CreateLiveStream(ctx, ls); err != nil {
			return fmt.Errorf("failed to seed live stream %q: %w", ls.Title, err)
		}
	}

	return nil
}

func samplePodcasts() []models.InsertPodcast {
	techImage := "https://images.unsplash.com/photo-1478737270239-2f02b77fc618?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=400"
	healthImage := "https://images.unsplash.com/photo-1559757148-5c350d0d3c56?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=400"
	return []models.InsertPodcast{
		{
			Title:       "Tech Talk Daily",
			Description: "Daily insights into the latest technology trends and breakthroughs",
			Author:      "RadioAI Studios",
			ImageURL:    &techImage,
			FeedURL:     "https://feeds.example.com/tech-talk-daily",
			Category:    "Technology",
		},
		{
			Title:       "Health & Wellness Today",
			Description: "Expert advice on health, wellness, and medical breakthroughs",
			Author:      "RadioAI Studios",
			ImageURL:    &healthImage,
			FeedURL:     "https://feeds.example.com/health-wellness",
			Category:    "Health",
		},
	}
}

func sampleLiveStreams() []models.InsertLiveStream {
	return []models.InsertLiveStream{
		{
			Title:       "Breaking News Live",
			Description: "24/7 breaking news coverage",
			StreamURL:   "https://stream.example.com/breaking-news",
			Category:    "Breaking",
			Listeners:   1250,
			Language:    "en",
		},
		{
			Title:       "Tech News Radio",
			Description: "Live technology news and discussions",
			StreamURL:   "https://stream.example.com/tech-radio",
			Category:    "Technology",
			Listeners:   890,
			Language:    "en",
		},
	}
}
