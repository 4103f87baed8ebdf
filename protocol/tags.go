package protocol

// Tag is a 4-byte ASCII command tag, e.g. "PrgI" or "CPgI".
type Tag string

// Inbound tags: one decoder per tag lives in package command.
const (
	TagProtocolVersion  Tag = "_ver"
	TagProductID        Tag = "_pin"
	TagWarning          Tag = "Warn"
	TagTopology         Tag = "_top"
	TagMixEffectConfig  Tag = "_MeC"
	TagMediaPlayerCount Tag = "_mpl"
	TagMultiViewerCount Tag = "_MvC"
	TagSuperSourceCount Tag = "_SSC"
	TagTallyCount       Tag = "_TlC"
	TagAudioMixerCount  Tag = "_AMC"
	TagVideoModeCaps    Tag = "_VMC"
	TagMacroPoolCount   Tag = "_MAC"
	TagPower            Tag = "Powr"
	TagDownConvert      Tag = "DcOt"
	TagVideoMode        Tag = "VidM"
	TagInputProperties  Tag = "InPr"
	TagMultiViewerProps Tag = "MvPr"
	TagMultiViewerInput Tag = "MvIn"
	TagProgramInput     Tag = "PrgI"
	TagPreviewInput     Tag = "PrvI"
	TagTransitionStyle  Tag = "TrSS"
	TagTransitionPrev   Tag = "TrPr"
	TagTransitionPos    Tag = "TrPs"
	TagTransitionMix    Tag = "TMxP"
	TagTransitionDip    Tag = "TDpP"
	TagTransitionWipe   Tag = "TWpP"
	TagTransitionDVE    Tag = "TDvP"
	TagTransitionSting  Tag = "TStP"
	TagKeyerOnAir       Tag = "KeOn"
	TagKeyerBase        Tag = "KeBP"
	TagKeyerLuma        Tag = "KeLm"
	TagKeyerChroma      Tag = "KeCk"
	TagKeyerPattern     Tag = "KePt"
	TagKeyerDVE         Tag = "KeDV"
	TagKeyerFly         Tag = "KeFS"
	TagKeyerFlyKeyframe Tag = "KKFP"
	TagDSKBase          Tag = "DskB"
	TagDSKProps         Tag = "DskP"
	TagDSKState         Tag = "DskS"
	TagFadeToBlackProps Tag = "FtbP"
	TagFadeToBlackState Tag = "FtbS"
	TagColorGenerator   Tag = "ColV"
	TagAuxSource        Tag = "AuxS"
	TagCameraControl    Tag = "CCdP"
	TagClipPlayback     Tag = "RCPS"
	TagMediaPlayerState Tag = "MPCE"
	TagMediaPlayerSplit Tag = "MPSp"
	TagMediaPoolClip    Tag = "MPCS"
	TagMediaPoolAudio   Tag = "MPAS"
	TagMediaPoolFrame   Tag = "MPfe"
	TagMacroRunStatus   Tag = "MRPr"
	TagMacroProperties  Tag = "MPrp"
	TagMacroRecordState Tag = "MRcS"
	TagSuperSourceProps Tag = "SSrc"
	TagSuperSourceBox   Tag = "SSBP"
	TagAudioMixerInput  Tag = "AMIP"
	TagAudioMixerMaster Tag = "AMMO"
	TagAudioMixerMonitor Tag = "AMmO"
	TagAudioMixerLevels Tag = "AMLv"
	TagAudioMixerTally  Tag = "AMTl"
	TagTallyByIndex     Tag = "TlIn"
	TagTallyBySource    Tag = "TlSr"
	TagTimeCode         Tag = "Time"

	// Supplemental inbound tags (see SPEC_FULL.md §6.1).
	TagLockState      Tag = "LKST"
	TagLockObtained   Tag = "LKOB"
	TagFileTransferData  Tag = "FTDE"
	TagFileTransferCont  Tag = "FTDC"
	TagFileTransferAck   Tag = "FTDA"
	TagFileTransferStat  Tag = "FTDS"
	TagRemoteStatus      Tag = "RXMS"
	TagRemoteCapability  Tag = "RXCP"
	TagRemoteConfig      Tag = "RXCC"
	TagAudioExpansionBus Tag = "AEBP"
	TagAudioExpansionIn  Tag = "_AEP"
	TagAudioExpansionOut Tag = "_AMP"
)

// Outbound tags: one encoder per tag lives in package command.
const (
	OutDownConvert        Tag = "CDcO"
	OutVideoMode          Tag = "CVdM"
	OutInputLongName      Tag = "CInL"
	OutMultiViewerProps   Tag = "CMvP"
	OutMultiViewerInput   Tag = "CMvI"
	OutProgramInput       Tag = "CPgI"
	OutPreviewInput       Tag = "CPvI"
	OutTransitionStyle    Tag = "CTTp"
	OutTransitionPreview  Tag = "CTPr"
	OutTransitionPosition Tag = "CTPs"
	OutTransitionMix      Tag = "CTMx"
	OutTransitionDip      Tag = "CTDp"
	OutTransitionWipe     Tag = "CTWp"
	OutTransitionDVE      Tag = "CTDv"
	OutTransitionSting    Tag = "CTSt"
	OutKeyerOnAir         Tag = "CKOn"
	OutKeyerType          Tag = "CKTp"
	OutKeyerMask          Tag = "CKMs"
	OutKeyerFill          Tag = "CKeF"
	OutKeyerKeySource     Tag = "CKeC"
	OutKeyerLuma          Tag = "CKLm"
	OutKeyerChromaKey     Tag = "CKCk"
	OutKeyerPattern       Tag = "CKPt"
	OutKeyerDVE           Tag = "CKDV"
	OutKeyerFlyKeyframeSet Tag = "SFKF"
	OutKeyerFlyRun        Tag = "RFlK"
	OutDSKFill            Tag = "CDsF"
	OutDSKKey             Tag = "CDsC"
	OutDSKTie             Tag = "CDsT"
	OutDSKRate            Tag = "CDsR"
	OutDSKGeneral         Tag = "CDsG"
	OutDSKMask            Tag = "CDsM"
	OutDSKOnAir           Tag = "CDsL"
	OutFadeToBlack        Tag = "FtbC"
	OutColorGenerator     Tag = "CClV"
	OutAuxSource          Tag = "CAuS"
	OutCameraControl      Tag = "CCmd"
	OutClipPlayback       Tag = "SCPS"
	OutMediaPlayerSource  Tag = "MPSS"
	OutMediaPoolStorage   Tag = "CMPS"
	OutMacroAction        Tag = "MAct"
	OutMacroRunProperty   Tag = "MRCP"
	OutMacroSleep         Tag = "MSlp"
	OutSuperSourceProps   Tag = "CSSc"
	OutSuperSourceBox     Tag = "CSBP"
	OutAudioMixerInput    Tag = "CAMI"
	OutAudioMixerMaster   Tag = "CAMM"
	OutAudioMixerMonitor  Tag = "CAMm"
	OutAudioLevelsEnable  Tag = "SALN"
	OutAudioRamp          Tag = "RAMP"
	OutCut                Tag = "DCut"
	OutAuto               Tag = "DAut"
	OutDSKAuto            Tag = "DDsA"
	OutFadeToBlackAuto    Tag = "FtbA"
	OutMacroRecord        Tag = "MSRc"

	// Supplemental outbound tags (see SPEC_FULL.md §6.2).
	OutTallyByIndex Tag = "CTlP"
	OutLock         Tag = "LOCK"
)

// names maps every known tag (inbound and outbound) to a short,
// human-readable description. It mirrors the original protocol's
// command table; unknown tags are valid (they're recorded via a warning
// event) and simply have no entry here.
var names = map[Tag]string{
	TagProtocolVersion:  "protocol version",
	TagProductID:        "product identifier",
	TagWarning:          "warning",
	TagTopology:         "topology",
	TagMixEffectConfig:  "mix effect block config",
	TagMediaPlayerCount: "media player count",
	TagMultiViewerCount: "multi viewer count",
	TagSuperSourceCount: "super source count",
	TagTallyCount:       "tally channel count",
	TagAudioMixerCount:  "audio mixer count",
	TagVideoModeCaps:    "video mode capabilities",
	TagMacroPoolCount:   "macro pool count",
	TagPower:            "power status",
	TagDownConvert:      "down converter mode",
	TagVideoMode:        "video mode",
	TagInputProperties:  "input properties",
	TagMultiViewerProps: "multi viewer properties",
	TagMultiViewerInput: "multi viewer window input",
	TagProgramInput:     "program input",
	TagPreviewInput:     "preview input",
	TagTransitionStyle:  "transition style",
	TagTransitionPrev:   "transition preview",
	TagTransitionPos:    "transition position",
	TagTransitionMix:    "transition mix rate",
	TagTransitionDip:    "transition dip",
	TagTransitionWipe:   "transition wipe",
	TagTransitionDVE:    "transition DVE",
	TagTransitionSting:  "transition stinger",
	TagKeyerOnAir:       "keyer on air",
	TagKeyerBase:        "keyer base properties",
	TagKeyerLuma:        "keyer luma",
	TagKeyerChroma:      "keyer chroma",
	TagKeyerPattern:     "keyer pattern",
	TagKeyerDVE:         "keyer DVE",
	TagKeyerFly:         "keyer fly",
	TagKeyerFlyKeyframe: "keyer fly keyframe",
	TagDSKBase:          "DSK base",
	TagDSKProps:         "DSK properties",
	TagDSKState:         "DSK state",
	TagFadeToBlackProps: "fade to black properties",
	TagFadeToBlackState: "fade to black state",
	TagColorGenerator:   "color generator",
	TagAuxSource:        "aux source",
	TagCameraControl:    "camera control",
	TagClipPlayback:     "clip player playback status",
	TagMediaPlayerState: "media player state",
	TagMediaPlayerSplit: "media player split",
	TagMediaPoolClip:    "media pool clip",
	TagMediaPoolAudio:   "media pool audio",
	TagMediaPoolFrame:   "media pool frame description",
	TagMacroRunStatus:   "macro run status",
	TagMacroProperties:  "macro properties",
	TagMacroRecordState: "macro record state",
	TagSuperSourceProps: "super source properties",
	TagSuperSourceBox:   "super source box parameters",
	TagAudioMixerInput:  "audio mixer input",
	TagAudioMixerMaster: "audio mixer master output",
	TagAudioMixerMonitor: "audio mixer monitor output",
	TagAudioMixerLevels: "audio mixer levels",
	TagAudioMixerTally:  "audio mixer tally",
	TagTallyByIndex:     "tally by index",
	TagTallyBySource:    "tally by source",
	TagTimeCode:         "time code",
	TagLockState:        "lock state",
	TagLockObtained:      "lock obtained",
	TagFileTransferData:  "file transfer data",
	TagFileTransferCont:  "file transfer continue",
	TagFileTransferAck:   "file transfer ack",
	TagFileTransferStat:  "file transfer status",
	TagRemoteStatus:      "remote device status",
	TagRemoteCapability:  "remote device capability",
	TagRemoteConfig:      "remote device config",
	TagAudioExpansionBus: "audio expansion bus properties",
	TagAudioExpansionIn:  "audio expansion input descriptor",
	TagAudioExpansionOut: "audio expansion output descriptor",

	OutDownConvert:        "set down converter mode",
	OutVideoMode:          "set video mode",
	OutInputLongName:      "set input long name",
	OutMultiViewerProps:   "set multi viewer properties",
	OutMultiViewerInput:   "set multi viewer window input",
	OutProgramInput:       "set program input",
	OutPreviewInput:       "set preview input",
	OutTransitionStyle:    "set transition style",
	OutTransitionPreview:  "set transition preview",
	OutTransitionPosition: "set transition position",
	OutTransitionMix:      "set transition mix rate",
	OutTransitionDip:      "set transition dip",
	OutTransitionWipe:     "set transition wipe",
	OutTransitionDVE:      "set transition DVE",
	OutTransitionSting:    "set transition stinger",
	OutKeyerOnAir:         "set keyer on air",
	OutKeyerType:          "set keyer type",
	OutKeyerMask:          "set keyer mask",
	OutKeyerFill:          "set keyer fill source",
	OutKeyerKeySource:     "set keyer key source",
	OutKeyerLuma:          "set keyer luma",
	OutKeyerChromaKey:     "set keyer chroma key",
	OutKeyerPattern:       "set keyer pattern",
	OutKeyerDVE:           "set keyer DVE",
	OutKeyerFlyKeyframeSet: "store keyer fly keyframe",
	OutKeyerFlyRun:        "run keyer fly keyframe",
	OutDSKFill:            "set DSK fill source",
	OutDSKKey:             "set DSK key source",
	OutDSKTie:             "set DSK tie",
	OutDSKRate:            "set DSK rate",
	OutDSKGeneral:         "set DSK general properties",
	OutDSKMask:            "set DSK mask",
	OutDSKOnAir:           "set DSK on air",
	OutFadeToBlack:        "set fade to black rate",
	OutColorGenerator:     "set color generator",
	OutAuxSource:          "set aux source",
	OutCameraControl:      "camera control command",
	OutSuperSourceProps:   "set super source properties",
	OutSuperSourceBox:     "set super source box parameters",
	OutMacroAction:        "macro action",
	OutMacroRunProperty:   "set macro run property",
	OutMacroSleep:         "insert macro sleep",
	OutClipPlayback:       "set clip player playback",
	OutMediaPlayerSource:  "set media player source",
	OutMediaPoolStorage:   "set media pool storage",
	OutAudioMixerInput:    "set audio mixer input",
	OutAudioMixerMaster:   "set audio mixer master",
	OutAudioMixerMonitor:  "set audio mixer monitor",
	OutAudioLevelsEnable:  "enable audio level streaming",
	OutAudioRamp:          "reset audio mixer peaks",
	OutCut:                "cut",
	OutAuto:               "auto transition",
	OutDSKAuto:            "DSK auto transition",
	OutFadeToBlackAuto:    "fade to black auto",
	OutMacroRecord:        "macro record",
	OutTallyByIndex:       "set tally by index",
	OutLock:               "request/release lock",
}

// Name returns the human readable description for tag, or false if tag is
// not known to this table.
func Name(tag Tag) (string, bool) {
	n, ok := names[tag]
	return n, ok
}
