package deploy

// Stage identifies one step of the deployment sequence.
type Stage string

const (
	StageBuild    Stage = "build"
	StageTeardown Stage = "teardown"
	StageLaunch   Stage = "launch"
)

// Event is emitted just before a stage executes. Detail is the subject of
// the stage: the image reference for build, the container name otherwise.
type Event struct {
	Stage  Stage
	Detail string
}
