package naming

type Naming struct {
	Prefix string
}
