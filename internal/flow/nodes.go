package flow

// Start is the entry element of a Flow. It carries no name in metadata; its
// identity is the StartName sentinel.
type Start struct {
	LocationX   int    `xml:"locationX" json:"locationX"`
	LocationY   int    `xml:"locationY" json:"locationY"`
	Description string `xml:"description" json:"description,omitempty"`

	Connector *Connector `xml:"connector" json:"connector,omitempty"`

	TriggerType       string `xml:"triggerType" json:"triggerType,omitempty"`
	Object            string `xml:"object" json:"object,omitempty"`
	RecordTriggerType string `xml:"recordTriggerType" json:"recordTriggerType,omitempty"`
	EntryType         string `xml:"entryType" json:"entryType,omitempty"`

	FilterLogic   string   `xml:"filterLogic" json:"filterLogic,omitempty"`
	Filters       []Filter `xml:"filters" json:"filters,omitempty"`
	FilterFormula string   `xml:"filterFormula" json:"filterFormula,omitempty"`

	DoesRequireRecordChangedToMeetCriteria bool `xml:"doesRequireRecordChangedToMeetCriteria" json:"doesRequireRecordChangedToMeetCriteria,omitempty"`

	Schedule       *Schedule       `xml:"schedule" json:"schedule,omitempty"`
	ScheduledPaths []ScheduledPath `xml:"scheduledPaths" json:"scheduledPaths,omitempty"`

	CapabilityTypes []CapabilityType `xml:"capabilityTypes" json:"capabilityTypes,omitempty"`
	Form            string           `xml:"form" json:"form,omitempty"`
	Segment         string           `xml:"segment" json:"segment,omitempty"`
	FlowRunAsUser   string           `xml:"flowRunAsUser" json:"flowRunAsUser,omitempty"`
}

func (s *Start) NodeName() string  { return StartName }
func (s *Start) NodeLabel() string { return "Start" }
func (s *Start) Kind() Kind        { return KindStart }

// ApexPluginCall invokes a legacy Apex plugin.
type ApexPluginCall struct {
	Element
	ApexClass        string      `xml:"apexClass" json:"apexClass,omitempty"`
	InputParameters  []Parameter `xml:"inputParameters" json:"inputParameters,omitempty"`
	OutputParameters []Parameter `xml:"outputParameters" json:"outputParameters,omitempty"`
	Connector        *Connector  `xml:"connector" json:"connector,omitempty"`
	FaultConnector   *Connector  `xml:"faultConnector" json:"faultConnector,omitempty"`
}

func (n *ApexPluginCall) Kind() Kind { return KindApexPluginCall }

// ActionCall invokes an invocable action.
type ActionCall struct {
	Element
	ActionName       string      `xml:"actionName" json:"actionName,omitempty"`
	ActionType       string      `xml:"actionType" json:"actionType,omitempty"`
	InputParameters  []Parameter `xml:"inputParameters" json:"inputParameters,omitempty"`
	OutputParameters []Parameter `xml:"outputParameters" json:"outputParameters,omitempty"`
	Connector        *Connector  `xml:"connector" json:"connector,omitempty"`
	FaultConnector   *Connector  `xml:"faultConnector" json:"faultConnector,omitempty"`
}

func (n *ActionCall) Kind() Kind { return KindActionCall }

// Assignment sets one or more variables.
type Assignment struct {
	Element
	AssignmentItems []AssignmentItem `xml:"assignmentItems" json:"assignmentItems,omitempty"`
	Connector       *Connector       `xml:"connector" json:"connector,omitempty"`
}

func (n *Assignment) Kind() Kind { return KindAssignment }

// CollectionProcessor sorts, filters or otherwise reshapes a collection.
type CollectionProcessor struct {
	Element
	CollectionProcessorType    string      `xml:"collectionProcessorType" json:"collectionProcessorType,omitempty"`
	CollectionReference        string      `xml:"collectionReference" json:"collectionReference,omitempty"`
	AssignNextValueToReference string      `xml:"assignNextValueToReference" json:"assignNextValueToReference,omitempty"`
	ConditionLogic             string      `xml:"conditionLogic" json:"conditionLogic,omitempty"`
	Conditions                 []Condition `xml:"conditions" json:"conditions,omitempty"`
	Connector                  *Connector  `xml:"connector" json:"connector,omitempty"`
}

func (n *CollectionProcessor) Kind() Kind { return KindCollectionProcessor }

// Decision branches on an ordered list of rules with an optional default path.
type Decision struct {
	Element
	Rules                 []Rule     `xml:"rules" json:"rules,omitempty"`
	DefaultConnector      *Connector `xml:"defaultConnector" json:"defaultConnector,omitempty"`
	DefaultConnectorLabel string     `xml:"defaultConnectorLabel" json:"defaultConnectorLabel,omitempty"`
}

func (n *Decision) Kind() Kind { return KindDecision }

// Loop iterates a collection: NextValueConnector enters the body for each
// element, NoMoreValuesConnector continues after the last one.
type Loop struct {
	Element
	CollectionReference   string     `xml:"collectionReference" json:"collectionReference,omitempty"`
	IterationOrder        string     `xml:"iterationOrder" json:"iterationOrder,omitempty"`
	NextValueConnector    *Connector `xml:"nextValueConnector" json:"nextValueConnector,omitempty"`
	NoMoreValuesConnector *Connector `xml:"noMoreValuesConnector" json:"noMoreValuesConnector,omitempty"`
}

func (n *Loop) Kind() Kind { return KindLoop }

// OrchestratedStage groups ordered steps of an orchestration.
type OrchestratedStage struct {
	Element
	StageSteps     []StageStep `xml:"stageSteps" json:"stageSteps,omitempty"`
	Connector      *Connector  `xml:"connector" json:"connector,omitempty"`
	FaultConnector *Connector  `xml:"faultConnector" json:"faultConnector,omitempty"`
}

func (n *OrchestratedStage) Kind() Kind { return KindOrchestratedStage }

// RecordCreate inserts one or more records.
type RecordCreate struct {
	Element
	Object                   string            `xml:"object" json:"object,omitempty"`
	InputReference           string            `xml:"inputReference" json:"inputReference,omitempty"`
	InputAssignments         []FieldAssignment `xml:"inputAssignments" json:"inputAssignments,omitempty"`
	StoreOutputAutomatically bool              `xml:"storeOutputAutomatically" json:"storeOutputAutomatically,omitempty"`
	Connector                *Connector        `xml:"connector" json:"connector,omitempty"`
	FaultConnector           *Connector        `xml:"faultConnector" json:"faultConnector,omitempty"`
}

func (n *RecordCreate) Kind() Kind { return KindRecordCreate }

// RecordDelete removes records matching its filters or input reference.
type RecordDelete struct {
	Element
	Object         string     `xml:"object" json:"object,omitempty"`
	InputReference string     `xml:"inputReference" json:"inputReference,omitempty"`
	Filters        []Filter   `xml:"filters" json:"filters,omitempty"`
	Connector      *Connector `xml:"connector" json:"connector,omitempty"`
	FaultConnector *Connector `xml:"faultConnector" json:"faultConnector,omitempty"`
}

func (n *RecordDelete) Kind() Kind { return KindRecordDelete }

// RecordLookup queries records.
type RecordLookup struct {
	Element
	Object                   string     `xml:"object" json:"object,omitempty"`
	FilterLogic              string     `xml:"filterLogic" json:"filterLogic,omitempty"`
	Filters                  []Filter   `xml:"filters" json:"filters,omitempty"`
	QueriedFields            []string   `xml:"queriedFields" json:"queriedFields,omitempty"`
	SortField                string     `xml:"sortField" json:"sortField,omitempty"`
	SortOrder                string     `xml:"sortOrder" json:"sortOrder,omitempty"`
	GetFirstRecordOnly       bool       `xml:"getFirstRecordOnly" json:"getFirstRecordOnly,omitempty"`
	StoreOutputAutomatically bool       `xml:"storeOutputAutomatically" json:"storeOutputAutomatically,omitempty"`
	OutputReference          string     `xml:"outputReference" json:"outputReference,omitempty"`
	Connector                *Connector `xml:"connector" json:"connector,omitempty"`
	FaultConnector           *Connector `xml:"faultConnector" json:"faultConnector,omitempty"`
}

func (n *RecordLookup) Kind() Kind { return KindRecordLookup }

// RecordRollback undoes the pending record changes of the running transaction.
type RecordRollback struct {
	Element
	Connector      *Connector `xml:"connector" json:"connector,omitempty"`
	FaultConnector *Connector `xml:"faultConnector" json:"faultConnector,omitempty"`
}

func (n *RecordRollback) Kind() Kind { return KindRecordRollback }

// RecordUpdate modifies records matching its filters or input reference.
type RecordUpdate struct {
	Element
	Object           string            `xml:"object" json:"object,omitempty"`
	InputReference   string            `xml:"inputReference" json:"inputReference,omitempty"`
	Filters          []Filter          `xml:"filters" json:"filters,omitempty"`
	InputAssignments []FieldAssignment `xml:"inputAssignments" json:"inputAssignments,omitempty"`
	Connector        *Connector        `xml:"connector" json:"connector,omitempty"`
	FaultConnector   *Connector        `xml:"faultConnector" json:"faultConnector,omitempty"`
}

func (n *RecordUpdate) Kind() Kind { return KindRecordUpdate }

// Screen presents a UI form.
type Screen struct {
	Element
	Fields      []ScreenField `xml:"fields" json:"fields,omitempty"`
	AllowBack   bool          `xml:"allowBack" json:"allowBack,omitempty"`
	AllowFinish bool          `xml:"allowFinish" json:"allowFinish,omitempty"`
	AllowPause  bool          `xml:"allowPause" json:"allowPause,omitempty"`
	Connector   *Connector    `xml:"connector" json:"connector,omitempty"`
}

func (n *Screen) Kind() Kind { return KindScreen }

// Step is a legacy flow step. It is the one kind whose outgoing links are a
// plural connector list.
type Step struct {
	Element
	Connectors []Connector `xml:"connectors" json:"connectors,omitempty"`
}

func (n *Step) Kind() Kind { return KindStep }

// Subflow invokes another Flow.
type Subflow struct {
	Element
	FlowName          string      `xml:"flowName" json:"flowName,omitempty"`
	InputAssignments  []Parameter `xml:"inputAssignments" json:"inputAssignments,omitempty"`
	OutputAssignments []Parameter `xml:"outputAssignments" json:"outputAssignments,omitempty"`
	Connector         *Connector  `xml:"connector" json:"connector,omitempty"`
}

func (n *Subflow) Kind() Kind { return KindSubflow }

// Transform maps source data onto a target shape.
type Transform struct {
	Element
	DataType        string           `xml:"dataType" json:"dataType,omitempty"`
	ObjectType      string           `xml:"objectType" json:"objectType,omitempty"`
	TransformValues []TransformValue `xml:"transformValues" json:"transformValues,omitempty"`
	Connector       *Connector       `xml:"connector" json:"connector,omitempty"`
}

func (n *Transform) Kind() Kind { return KindTransform }

// Wait pauses until one of its events fires, with an optional default and
// fault path.
type Wait struct {
	Element
	WaitEvents            []WaitEvent `xml:"waitEvents" json:"waitEvents,omitempty"`
	DefaultConnector      *Connector  `xml:"defaultConnector" json:"defaultConnector,omitempty"`
	DefaultConnectorLabel string      `xml:"defaultConnectorLabel" json:"defaultConnectorLabel,omitempty"`
	FaultConnector        *Connector  `xml:"faultConnector" json:"faultConnector,omitempty"`
}

func (n *Wait) Kind() Kind { return KindWait }

// CustomError raises one or more custom error messages. A connector is
// accepted for completeness but real flows terminate here.
type CustomError struct {
	Element
	CustomErrorMessages []CustomErrorMessage `xml:"customErrorMessages" json:"customErrorMessages,omitempty"`
	Connector           *Connector           `xml:"connector" json:"connector,omitempty"`
}

func (n *CustomError) Kind() Kind { return KindCustomError }
