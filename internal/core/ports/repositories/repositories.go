package repositories

// RepositoryProvider holds instances of all repositories, so wiring code can
// pass one value instead of seven.
type RepositoryProvider struct {
	User        UserRepository
	Church      ChurchRepository
	Branch      BranchRepository
	Member      MemberRepository
	Category    CategoryRepository
	Transaction TransactionRepository
	Tithe       TitheRepository
}
