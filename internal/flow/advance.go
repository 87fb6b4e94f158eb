package flow

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/JaimeStill/go-agents-orchestration/pkg/state"

	"github.com/veridoc-co/veridoc/internal/classifier"
	"github.com/veridoc-co/veridoc/internal/documents"
	"github.com/veridoc-co/veridoc/internal/records"
	"github.com/veridoc-co/veridoc/internal/sessions"
)

// Blob names within a session's storage prefix.
const (
	blobFront      = "enhanced_front.jpg"
	blobBack       = "enhanced_back.jpg"
	blobSourceJPEG = "source.jpg"
	blobSourcePDF  = "source.pdf"
	blobFinalPDF   = "final.pdf"
)

const (
	feedbackCouldNotProcess = "No se pudo procesar el documento. Por favor, intenta de nuevo."
	feedbackDuplicateFront  = "Ya recibimos la cara frontal. Por favor, envía la cara TRASERA del documento."
	feedbackDuplicateBack   = "Ya recibimos la cara trasera. Por favor, envía la cara FRONTAL del documento."
)

// AdvanceNode returns a state node that applies the classification verdict
// to the session's state machine and produces the pass Outcome. When
// resolution already produced a terminal Outcome the node passes it through
// untouched.
func AdvanceNode(rt *Runtime) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		if shortCircuited(s) {
			return s, nil
		}

		upload, err := stateValue[Upload](s, KeyUpload)
		if err != nil {
			return s, fmt.Errorf("advance: %w", err)
		}

		session, err := stateValue[sessions.Session](s, KeySession)
		if err != nil {
			return s, fmt.Errorf("advance: %w", err)
		}

		result, err := stateValue[classifier.Result](s, KeyClassification)
		if err != nil {
			return s, fmt.Errorf("advance: %w", err)
		}

		conditioned, err := stateValue[[]byte](s, KeyConditioned)
		if err != nil {
			return s, fmt.Errorf("advance: %w", err)
		}

		var outcome *Outcome
		switch session.FlowState {
		case sessions.StateAwaitingFirstUpload:
			outcome, err = handleFirstUpload(ctx, rt, &session, result, conditioned, upload)
		case sessions.StateAwaitingSecondSide:
			outcome, err = handleSecondSide(ctx, rt, &session, result, conditioned, upload)
		default:
			outcome = &Outcome{
				SessionID: session.ID,
				Status:    StatusError,
				Feedback:  feedbackUnexpected,
			}
		}

		if err != nil {
			return s, fmt.Errorf("advance: %w: %w", ErrAdvanceFailed, err)
		}

		return s.Set(KeyOutcome, *outcome), nil
	})
}

func handleFirstUpload(
	ctx context.Context,
	rt *Runtime,
	session *sessions.Session,
	res classifier.Result,
	conditioned []byte,
	upload Upload,
) (*Outcome, error) {
	if !res.IsValidDocument || res.DocumentType == documents.TypeUnknown {
		return &Outcome{
			SessionID:    session.ID,
			Status:       StatusInvalidDocument,
			DocumentType: res.DocumentType,
			DetectedSide: res.DocumentSide,
			IsValid:      false,
			IsLegible:    res.IsLegible,
			Feedback:     res.UserFeedback,
			Label:        upload.Label,
		}, nil
	}

	if !res.IsLegible {
		return &Outcome{
			SessionID:    session.ID,
			Status:       StatusNeedsBetterImage,
			DocumentType: res.DocumentType,
			DetectedSide: res.DocumentSide,
			IsValid:      true,
			IsLegible:    false,
			Feedback:     res.UserFeedback,
			Label:        upload.Label,
		}, nil
	}

	if res.DocumentType.SinglePage() {
		return completeSinglePage(ctx, rt, session, res, conditioned, upload)
	}

	if res.ContainsBothSides && res.DocumentSide == documents.SideFullDocument {
		return completeFullDocument(ctx, rt, session, res.DocumentType, res, conditioned, upload)
	}

	if res.DocumentType.TwoSided() {
		return saveFirstSide(ctx, rt, session, res, conditioned, upload)
	}

	return &Outcome{
		SessionID:    session.ID,
		Status:       StatusError,
		DocumentType: res.DocumentType,
		DetectedSide: res.DocumentSide,
		Feedback:     feedbackCouldNotProcess,
		Label:        upload.Label,
	}, nil
}

func handleSecondSide(
	ctx context.Context,
	rt *Runtime,
	session *sessions.Session,
	res classifier.Result,
	conditioned []byte,
	upload Upload,
) (*Outcome, error) {
	expected := session.DocumentType

	if !res.IsValidDocument {
		return &Outcome{
			SessionID:    session.ID,
			Status:       StatusInvalidDocument,
			DocumentType: res.DocumentType,
			DetectedSide: res.DocumentSide,
			IsValid:      false,
			IsLegible:    res.IsLegible,
			Feedback:     res.UserFeedback,
			Label:        upload.Label,
		}, nil
	}

	if !res.IsLegible {
		return &Outcome{
			SessionID:    session.ID,
			Status:       StatusNeedsBetterImage,
			DocumentType: expected,
			DetectedSide: res.DocumentSide,
			IsValid:      true,
			IsLegible:    false,
			Feedback:     res.UserFeedback,
			Label:        upload.Label,
		}, nil
	}

	if res.DocumentType != expected && res.DocumentType != documents.TypeUnknown {
		return &Outcome{
			SessionID:    session.ID,
			Status:       missingSideStatus(session),
			DocumentType: expected,
			DetectedSide: res.DocumentSide,
			IsValid:      true,
			IsLegible:    true,
			Feedback: fmt.Sprintf(
				"El documento enviado parece ser un tipo diferente al esperado. "+
					"Se espera continuar con la misma %s. "+
					"Por favor, envía la cara faltante del mismo documento.",
				expected.Label(),
			),
			Label: upload.Label,
		}, nil
	}

	if res.DocumentSide == documents.SideFront && session.Sides.Front != nil {
		return &Outcome{
			SessionID:    session.ID,
			Status:       StatusNeedsBackSide,
			DocumentType: expected,
			DetectedSide: res.DocumentSide,
			IsValid:      true,
			IsLegible:    true,
			Feedback:     feedbackDuplicateFront,
			Label:        upload.Label,
		}, nil
	}

	if res.DocumentSide == documents.SideBack && session.Sides.Back != nil {
		return &Outcome{
			SessionID:    session.ID,
			Status:       StatusNeedsFrontSide,
			DocumentType: expected,
			DetectedSide: res.DocumentSide,
			IsValid:      true,
			IsLegible:    true,
			Feedback:     feedbackDuplicateBack,
			Label:        upload.Label,
		}, nil
	}

	if res.ContainsBothSides && res.DocumentSide == documents.SideFullDocument {
		return completeFullDocument(ctx, rt, session, expected, res, conditioned, upload)
	}

	return completeTwoSides(ctx, rt, session, res, conditioned, upload)
}

// saveFirstSide stores the captured face, moves the session to
// AWAITING_SECOND_SIDE, and asks the caller for the missing face.
func saveFirstSide(
	ctx context.Context,
	rt *Runtime,
	session *sessions.Session,
	res classifier.Result,
	conditioned []byte,
	upload Upload,
) (*Outcome, error) {
	name := blobBack
	status := StatusNeedsFrontSide
	if res.DocumentSide == documents.SideFront {
		name = blobFront
		status = StatusNeedsBackSide
	}

	key := sessionKey(session.ID, name)
	if err := rt.Storage.Upload(ctx, key, bytes.NewReader(conditioned), "image/jpeg"); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorageFailed, err)
	}

	extracted := res.ExtractedData
	session.FlowState = sessions.StateAwaitingSecondSide
	session.DocumentType = res.DocumentType
	session.ExtractedFirstSide = &extracted
	session.Label = upload.Label
	if res.DocumentSide == documents.SideFront {
		session.Sides.Front = &key
	} else {
		session.Sides.Back = &key
	}

	if err := rt.Sessions.Update(ctx, session); err != nil {
		return nil, err
	}

	return &Outcome{
		SessionID:     session.ID,
		Status:        status,
		DocumentType:  res.DocumentType,
		DetectedSide:  res.DocumentSide,
		IsValid:       true,
		IsLegible:     true,
		Feedback:      res.UserFeedback,
		ExtractedData: &extracted,
		Alerts:        documents.BuildAlerts(extracted, res.DocumentType),
		Label:         upload.Label,
	}, nil
}

// completeTwoSides stores the second face, renders the consolidated PDF,
// merges both extractions, and terminalizes the session. A low-confidence
// verdict still terminalizes but skips persistence and the signed URL.
func completeTwoSides(
	ctx context.Context,
	rt *Runtime,
	session *sessions.Session,
	res classifier.Result,
	conditioned []byte,
	upload Upload,
) (*Outcome, error) {
	docType := session.DocumentType

	name := blobBack
	if res.DocumentSide == documents.SideFront {
		name = blobFront
	}

	key := sessionKey(session.ID, name)
	if err := rt.Storage.Upload(ctx, key, bytes.NewReader(conditioned), "image/jpeg"); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorageFailed, err)
	}

	var front, back []byte
	if res.DocumentSide == documents.SideFront {
		front = conditioned
		stored, err := downloadBlob(ctx, rt, session.Sides.Back)
		if err != nil {
			return nil, err
		}
		back = stored
	} else {
		stored, err := downloadBlob(ctx, rt, session.Sides.Front)
		if err != nil {
			return nil, err
		}
		front = stored
		back = conditioned
	}

	pdfBytes, err := rt.Renderer.RenderTwoSided(front, back, docType)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRenderFailed, err)
	}

	pdfKey := sessionKey(session.ID, blobFinalPDF)
	if err := rt.Storage.Upload(ctx, pdfKey, bytes.NewReader(pdfBytes), "application/pdf"); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorageFailed, err)
	}

	first := documents.ExtractedData{}
	if session.ExtractedFirstSide != nil {
		first = *session.ExtractedFirstSide
	}
	merged := documents.Merge(first, res.ExtractedData)

	label := upload.Label
	if label == nil {
		label = session.Label
	}

	alerts := documents.BuildAlerts(merged, docType)
	status := StatusCompleted
	if documents.ShouldRetry(alerts) {
		status = StatusNeedsBetterImage
	}

	session.FlowState = sessions.StateCompleted
	session.FinalPDFPath = &pdfKey
	if res.DocumentSide == documents.SideFront {
		session.Sides.Front = &key
	} else {
		session.Sides.Back = &key
	}

	if err := rt.Sessions.Update(ctx, session); err != nil {
		return nil, err
	}

	outcome := &Outcome{
		SessionID:     session.ID,
		Status:        status,
		DocumentType:  docType,
		DetectedSide:  res.DocumentSide,
		IsValid:       true,
		IsLegible:     true,
		Feedback:      res.UserFeedback,
		ExtractedData: &merged,
		Alerts:        alerts,
		Label:         label,
	}

	if status == StatusCompleted {
		if err := finalize(ctx, rt, outcome, session.ID, docType, merged, alerts, pdfKey, label); err != nil {
			return nil, err
		}
	}

	return outcome, nil
}

// completeSinglePage terminalizes a single-page document on its first upload.
func completeSinglePage(
	ctx context.Context,
	rt *Runtime,
	session *sessions.Session,
	res classifier.Result,
	conditioned []byte,
	upload Upload,
) (*Outcome, error) {
	docType := res.DocumentType

	alerts := documents.BuildAlerts(res.ExtractedData, docType)
	status := StatusCompleted
	if documents.ShouldRetry(alerts) {
		status = StatusNeedsBetterImage
	}

	pdfBytes, err := finalPDF(rt, conditioned, docType, upload)
	if err != nil {
		return nil, err
	}

	imgKey := sessionKey(session.ID, blobSourceJPEG)
	if err := rt.Storage.Upload(ctx, imgKey, bytes.NewReader(conditioned), "image/jpeg"); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorageFailed, err)
	}

	pdfKey := sessionKey(session.ID, blobFinalPDF)
	if err := rt.Storage.Upload(ctx, pdfKey, bytes.NewReader(pdfBytes), "application/pdf"); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorageFailed, err)
	}

	session.FlowState = sessions.StateCompleted
	session.DocumentType = docType
	session.SinglePagePath = &imgKey
	session.FinalPDFPath = &pdfKey

	if err := rt.Sessions.Update(ctx, session); err != nil {
		return nil, err
	}

	extracted := res.ExtractedData
	outcome := &Outcome{
		SessionID:     session.ID,
		Status:        status,
		DocumentType:  docType,
		DetectedSide:  res.DocumentSide,
		IsValid:       true,
		IsLegible:     true,
		Feedback:      res.UserFeedback,
		ExtractedData: &extracted,
		Alerts:        alerts,
		Label:         upload.Label,
	}

	if status == StatusCompleted {
		if err := finalize(ctx, rt, outcome, session.ID, docType, extracted, alerts, pdfKey, upload.Label); err != nil {
			return nil, err
		}
	}

	return outcome, nil
}

// completeFullDocument terminalizes a two-sided document captured in one
// image or PDF.
func completeFullDocument(
	ctx context.Context,
	rt *Runtime,
	session *sessions.Session,
	docType documents.Type,
	res classifier.Result,
	conditioned []byte,
	upload Upload,
) (*Outcome, error) {
	alerts := documents.BuildAlerts(res.ExtractedData, docType)
	status := StatusCompleted
	if documents.ShouldRetry(alerts) {
		status = StatusNeedsBetterImage
	}

	pdfBytes, err := finalPDF(rt, conditioned, docType, upload)
	if err != nil {
		return nil, err
	}

	pdfKey := sessionKey(session.ID, blobFinalPDF)
	if err := rt.Storage.Upload(ctx, pdfKey, bytes.NewReader(pdfBytes), "application/pdf"); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorageFailed, err)
	}

	sourceName := blobSourceJPEG
	sourceType := "image/jpeg"
	if upload.IsPDF() {
		sourceName = blobSourcePDF
		sourceType = "application/pdf"
	}

	sourceKey := sessionKey(session.ID, sourceName)
	if err := rt.Storage.Upload(ctx, sourceKey, bytes.NewReader(conditioned), sourceType); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorageFailed, err)
	}

	session.FlowState = sessions.StateCompleted
	session.DocumentType = docType
	session.SinglePagePath = &sourceKey
	session.FinalPDFPath = &pdfKey

	if err := rt.Sessions.Update(ctx, session); err != nil {
		return nil, err
	}

	extracted := res.ExtractedData
	outcome := &Outcome{
		SessionID:     session.ID,
		Status:        status,
		DocumentType:  docType,
		DetectedSide:  documents.SideFullDocument,
		IsValid:       true,
		IsLegible:     true,
		Feedback:      res.UserFeedback,
		ExtractedData: &extracted,
		Alerts:        alerts,
		Label:         upload.Label,
	}

	if status == StatusCompleted {
		if err := finalize(ctx, rt, outcome, session.ID, docType, extracted, alerts, pdfKey, upload.Label); err != nil {
			return nil, err
		}
	}

	return outcome, nil
}

// finalize persists the extracted data indefinitely and attaches the signed
// download URL to the outcome. Only completed passes reach this point.
func finalize(
	ctx context.Context,
	rt *Runtime,
	outcome *Outcome,
	sessionID string,
	docType documents.Type,
	extracted documents.ExtractedData,
	alerts []string,
	pdfKey string,
	label *string,
) error {
	url, err := rt.Storage.SignedURL(ctx, pdfKey, rt.SignedURLTTL)
	if err != nil {
		return fmt.Errorf("%w: sign pdf url: %w", ErrStorageFailed, err)
	}
	outcome.GeneratedPDF = &url

	cmd := records.SaveCommand{
		SessionID:     sessionID,
		DocumentType:  docType,
		ExtractedData: extracted,
		Alerts:        alerts,
		PDFKey:        pdfKey,
	}
	if label != nil {
		cmd.Label = *label
	}

	if _, err := rt.Records.Save(ctx, cmd); err != nil {
		return err
	}

	return nil
}

// finalPDF reuses an uploaded PDF when it is structurally valid, otherwise
// renders the image onto a single-page PDF.
func finalPDF(rt *Runtime, data []byte, docType documents.Type, upload Upload) ([]byte, error) {
	if upload.IsPDF() && rt.Renderer.ValidatePDF(data) {
		return data, nil
	}

	pdfBytes, err := rt.Renderer.RenderSinglePage(data, docType)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRenderFailed, err)
	}

	return pdfBytes, nil
}

func missingSideStatus(session *sessions.Session) Status {
	if session.Sides.Front != nil {
		return StatusNeedsBackSide
	}
	return StatusNeedsFrontSide
}

func downloadBlob(ctx context.Context, rt *Runtime, key *string) ([]byte, error) {
	if key == nil {
		return nil, fmt.Errorf("%w: stored side path missing", ErrStorageFailed)
	}

	body, err := rt.Storage.Download(ctx, *key)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorageFailed, err)
	}
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("%w: read blob %s: %w", ErrStorageFailed, *key, err)
	}

	return data, nil
}

// SessionPrefix is the storage prefix under which a session's blobs live.
func SessionPrefix(sessionID string) string {
	return fmt.Sprintf("sessions/%s/", sessionID)
}

func sessionKey(sessionID, name string) string {
	return SessionPrefix(sessionID) + name
}
