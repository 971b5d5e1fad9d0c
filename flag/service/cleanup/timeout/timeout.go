package timeout

type Timeout struct {
	DiskNotFound               string
	NotInResourceGroup         string
	NotInResourceGroupInterval string
	ResourceDeleted            string
	ResourceDeletedInterval    string
}
