package progress

// Badge is a named achievement. Unlocked badge IDs are stored in State and
// only ever grow.
type Badge struct {
	ID          string
	Name        string
	Description string
	Icon        string
	unlocked    func(State) bool
}

// Catalog returns all known badges in display order.
func Catalog() []Badge {
	return []Badge{
		{
			ID:          "first_step",
			Name:        "Алғашқы қадам",
			Description: "Бірінші есепті талдадың",
			Icon:        "🌱",
			unlocked:    func(s State) bool { return s.SolvedCount >= 1 },
		},
		{
			ID:          "ten_solved",
			Name:        "Он есеп",
			Description: "10 есеп талданды",
			Icon:        "🔟",
			unlocked:    func(s State) bool { return s.SolvedCount >= 10 },
		},
		{
			ID:          "fifty_solved",
			Name:        "Есеп шебері",
			Description: "50 есеп талданды",
			Icon:        "🏅",
			unlocked:    func(s State) bool { return s.SolvedCount >= 50 },
		},
		{
			ID:          "level_five",
			Name:        "Бесінші деңгей",
			Description: "5-деңгейге жеттің",
			Icon:        "⭐",
			unlocked:    func(s State) bool { return s.Level() >= 5 },
		},
		{
			ID:          "level_ten",
			Name:        "Оныншы деңгей",
			Description: "10-деңгейге жеттің",
			Icon:        "🏆",
			unlocked:    func(s State) bool { return s.Level() >= 10 },
		},
		{
			ID:          "week_streak",
			Name:        "Апталық серия",
			Description: "7 күн қатарынан оқыдың",
			Icon:        "🔥",
			unlocked:    func(s State) bool { return s.Streak >= 7 },
		},
	}
}

// unlockBadges returns the badge set with any newly earned badges added.
// Badges are never removed; IDs already present are kept even if no longer
// in the catalog.
func unlockBadges(s State) []string {
	out := s.Badges
	for _, b := range Catalog() {
		if s.HasBadge(b.ID) {
			continue
		}
		if b.unlocked(s) {
			out = append(out, b.ID)
		}
	}
	return out
}
