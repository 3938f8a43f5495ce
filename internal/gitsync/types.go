package gitsync

// RepoRef identifies a remote repository. Produced once by ParseRepoRef
// and threaded through every remote call.
type RepoRef struct {
	Owner string
	Name  string
}

func (r RepoRef) String() string {
	return r.Owner + "/" + r.Name
}

// FileRecord is the project model's unit of content. The engine only
// produces these (import) or reads them (push); their lifecycle belongs
// to the surrounding application.
type FileRecord struct {
	Path     string `json:"path"`
	Content  string `json:"content"`
	Language string `json:"language"`
}

// FileFailure records a per-file, non-fatal error. The file it names
// was dropped from the operation; everything else went through.
type FileFailure struct {
	Path string
	Err  error
}

func (f FileFailure) Error() string {
	return f.Path + ": " + f.Err.Error()
}

func (f FileFailure) Unwrap() error {
	return f.Err
}

// ImportResult is the outcome of one Import: the eligible files plus
// any per-file fetch/decode failures that were skipped over.
type ImportResult struct {
	RepoName string
	Branch   string
	Files    []FileRecord
	Failures []FileFailure
}

// PushResult is the outcome of one Push. Failures lists files dropped
// from the commit because their blob creation failed; they are simply
// absent from the new tree and recoverable on the next push.
type PushResult struct {
	Branch    string
	CommitSHA string
	Pushed    []string
	Failures  []FileFailure
}
