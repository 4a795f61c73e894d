package app

type CheckoutObjectRequest struct {
	Name string
	Dir  string
}

type CheckoutObjectResult struct {
	Name string
}

type CheckoutPackageRequest struct {
	Name           string
	Directory      string
	StartingFolder string
	Recursive      bool
}

type CheckoutPackageResult struct {
	RepoDir     string
	Packages    int
	Exported    int
	Unsupported int
}
