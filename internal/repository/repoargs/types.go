package repoargs

type RepositoryName string

const (
	ItemRepoName     RepositoryName = "item"
	AccountRepoName  RepositoryName = "account"
	PurchaseRepoName RepositoryName = "purchase"
	UserItemRepoName RepositoryName = "user_item"
)
