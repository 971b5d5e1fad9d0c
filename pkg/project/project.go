package project

var (
	description string = "The azure-node-cleanup tears down an Azure VM node and the resources it leaves behind."
	gitSHA             = "n/a"
	name        string = "azure-node-cleanup"
	source      string = "https://github.com/giantswarm/azure-node-cleanup"
	version            = "0.1.0-dev"
)

func Description() string {
	return description
}

func GitSHA() string {
	return gitSHA
}

func Name() string {
	return name
}

func Source() string {
	return source
}

func Version() string {
	return version
}
