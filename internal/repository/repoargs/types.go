package repoargs

type RepositoryName string

const (
	UserRepoName        RepositoryName = "user"
	DealerRepoName      RepositoryName = "dealer"
	LedgerEntryRepoName RepositoryName = "ledger_entry"
	ProductRepoName     RepositoryName = "product"
	OrderRepoName       RepositoryName = "order"
	ApplicationRepoName RepositoryName = "application"
)
