package domain

import "go.trai.ch/zerr"

var (
	// ErrDuplicateTarget is returned when a project already declares a target with the same name.
	ErrDuplicateTarget = zerr.New("duplicate target")

	// ErrConflictingCondition is returned when a target declares both an if and an unless condition.
	ErrConflictingCondition = zerr.New("target cannot declare both 'if' and 'unless'")

	// ErrMissingAttribute is returned when a required attribute is absent.
	ErrMissingAttribute = zerr.New("missing required attribute")

	// ErrElementShared is returned when a build element is attached to more than one parent.
	ErrElementShared = zerr.New("build element already has a parent")

	// ErrDuplicateReference is returned when a project reference name is declared twice.
	ErrDuplicateReference = zerr.New("duplicate project reference")

	// ErrInvalidFailurePolicy is returned when a failure policy name is not recognized.
	ErrInvalidFailurePolicy = zerr.New("invalid failure policy, expected 'fail', 'report' or 'ignore'")

	// ErrTargetNotFound is returned when a requested or depended-upon target does not exist.
	ErrTargetNotFound = zerr.New("target not found")

	// ErrReferenceNotFound is returned when a cross-project reference names an unknown project.
	ErrReferenceNotFound = zerr.New("project reference not found")

	// ErrNoTargetsSpecified is returned when no targets were requested and the project has no default.
	ErrNoTargetsSpecified = zerr.New("no targets specified and no default target declared")

	// ErrUnknownType is returned when no factory is registered for a (role, name) pair.
	ErrUnknownType = zerr.New("unknown type")

	// ErrUnknownRole is returned when a role has not been registered.
	ErrUnknownRole = zerr.New("unknown role")

	// ErrDuplicateDefinition is returned when a (role, name) pair is registered twice without override.
	ErrDuplicateDefinition = zerr.New("duplicate type definition")

	// ErrDuplicateRole is returned when a role is registered twice.
	ErrDuplicateRole = zerr.New("duplicate role")

	// ErrInvalidImplementation is returned when a symbol cannot be turned into a component factory.
	ErrInvalidImplementation = zerr.New("implementation does not satisfy role contract")

	// ErrDescriptorInvalid is returned when a library descriptor fails validation.
	ErrDescriptorInvalid = zerr.New("invalid library descriptor")

	// ErrDescriptorReadFailed is returned when a library descriptor cannot be read.
	ErrDescriptorReadFailed = zerr.New("failed to read library descriptor")

	// ErrModuleNotFound is returned when a descriptor names a module that is not compiled in.
	ErrModuleNotFound = zerr.New("library module not found")

	// ErrSymbolNotFound is returned when an implementation reference is missing from its module.
	ErrSymbolNotFound = zerr.New("implementation symbol not found")

	// ErrIncompatibleLibrary is returned when a library requires a different engine version.
	ErrIncompatibleLibrary = zerr.New("library requires an incompatible engine version")

	// ErrEmptyLibrary is returned by a strict deployment that registered no definitions.
	ErrEmptyLibrary = zerr.New("library declares no definitions")

	// ErrDeployFailed is returned when a library deployment is aborted.
	ErrDeployFailed = zerr.New("library deployment failed")

	// ErrUnsupportedAttribute is returned when an element configures a component that accepts no attributes.
	ErrUnsupportedAttribute = zerr.New("component does not support attributes")

	// ErrValidationFailed is returned when a component rejects its configuration.
	ErrValidationFailed = zerr.New("component validation failed")

	// ErrNotATask is returned when a build element resolves to a component that cannot execute.
	ErrNotATask = zerr.New("component is not a task")

	// ErrTaskFailed is returned when a task reports an unrecovered failure.
	ErrTaskFailed = zerr.New("task failed")

	// ErrBuildFailed is returned when a build run is aborted.
	ErrBuildFailed = zerr.New("build failed")

	// ErrListenerFailed is returned when one or more listeners failed during a run.
	ErrListenerFailed = zerr.New("build listener failed")

	// ErrConfigNotFound is returned when no project file can be found.
	ErrConfigNotFound = zerr.New("could not find anvil.yaml")

	// ErrConfigReadFailed is returned when the project file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read project file")

	// ErrConfigParseFailed is returned when the project file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse project file")

	// ErrInvalidElement is returned when a build element is not a single-key mapping.
	ErrInvalidElement = zerr.New("build element must be a mapping with a single key")

	// ErrJournalReadFailed is returned when the run journal cannot be read.
	ErrJournalReadFailed = zerr.New("failed to read run journal")

	// ErrJournalWriteFailed is returned when the run journal cannot be written.
	ErrJournalWriteFailed = zerr.New("failed to write run journal")
)
