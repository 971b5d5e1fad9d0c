package tags

type Tags struct {
	AutogeneratedIP string
	Managed         string
}
